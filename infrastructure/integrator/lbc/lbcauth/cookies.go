package lbcauth

import (
	"bufio"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// CookieStore expõe a leitura por nome do estado de cookies do navegador
type CookieStore interface {
	Get(name string) (string, bool)
}

// FileCookieStore lê cookies de um arquivo exportado do navegador. Aceita o
// formato Netscape (cookies.txt) e linhas no formato de cabeçalho
// "nome=valor; nome2=valor2".
type FileCookieStore struct {
	path string
}

func NewFileCookieStore(path string) *FileCookieStore {
	return &FileCookieStore{path: path}
}

// Get relê o arquivo a cada consulta; o arquivo é pequeno e o fluxo só
// consulta cookies uma vez por execução.
func (s *FileCookieStore) Get(name string) (string, bool) {
	file, err := os.Open(s.path)
	if err != nil {
		logrus.WithError(err).Debugf("Não foi possível abrir o arquivo de cookies %s", s.path)
		return "", false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		// Formato Netscape: domínio \t flag \t path \t secure \t expiração \t nome \t valor
		if fields := strings.Split(line, "\t"); len(fields) >= 7 {
			cookieName := fields[5]
			if strings.HasPrefix(fields[0], "#") && !strings.HasPrefix(fields[0], "#HttpOnly_") {
				continue
			}
			if cookieName == name {
				return fields[6], true
			}
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		// Formato de cabeçalho Cookie
		if value, ok := findInHeaderLine(line, name); ok {
			return value, true
		}
	}

	return "", false
}

func findInHeaderLine(line, name string) (string, bool) {
	for _, pair := range strings.Split(line, ";") {
		pair = strings.TrimSpace(pair)
		key, value, found := strings.Cut(pair, "=")
		if found && key == name {
			return value, true
		}
	}
	return "", false
}
