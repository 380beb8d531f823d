package utils

import (
	"math"
	"strconv"
)

// PriceCents converte um preço em euros para a string de centavos que a API
// de criação espera em price_cents.
func PriceCents(price float64) string {
	return strconv.FormatInt(int64(math.Round(price*100)), 10)
}
