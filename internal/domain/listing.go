package domain

// Listing é uma annonce como a API a devolve: um conjunto aberto de campos.
// Só alguns campos são interpretados pelo fluxo de republicação; o resto é
// repassado tal e qual para a criação da nova annonce.
type Listing map[string]interface{}

// SubmissionPayload é o corpo de criação derivado de uma Listing pelo
// sanitizador. Nunca contém um campo read-only do servidor.
type SubmissionPayload map[string]interface{}

// Price devolve o preço atual da annonce quando ele é numérico
func (l Listing) Price() (float64, bool) {
	return asNumber(l["price"])
}

// WithPrice devolve uma cópia rasa da annonce com o preço substituído
func (l Listing) WithPrice(price float64) Listing {
	updated := make(Listing, len(l))
	for k, v := range l {
		updated[k] = v
	}
	updated["price"] = price
	return updated
}

func (l Listing) Subject() string {
	return asString(l["subject"])
}

func (l Listing) CategoryID() string {
	// category_id chega ora como número ora como string segundo o endpoint
	if s := asString(l["category_id"]); s != "" {
		return s
	}
	if n, ok := asNumber(l["category_id"]); ok {
		return formatInt(int64(n))
	}
	return ""
}

func (l Listing) CategoryName() string {
	return asString(l["category_name"])
}

func (l Listing) AdType() string {
	return asString(l["ad_type"])
}

// Summary é o resumo apresentado ao usuário antes da confirmação final
type Summary struct {
	Subject      string
	Price        float64
	CategoryName string
}

func (l Listing) Summary() Summary {
	price, _ := l.Price()
	return Summary{
		Subject:      l.Subject(),
		Price:        price,
		CategoryName: l.CategoryName(),
	}
}
