package catalog

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// Placeholder values sent with every created product.
const (
	PlaceholderDescription = "Product generated from the terminal"
	PlaceholderImage       = "https://i.pravatar.cc"
)

// ErrInvalidParams is returned when create arguments fail validation.
var ErrInvalidParams = errors.New("invalid parameters")

// NewProduct is the JSON body of a create request.
type NewProduct struct {
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
	Category    string  `json:"category"`
}

var leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParsePrice reads the longest numeric prefix of s after leading whitespace,
// so "19.99usd" is 19.99. Input without a numeric prefix yields NaN and
// out-of-range input yields an infinity.
func ParsePrice(s string) float64 {
	m := leadingFloat.FindString(trimLeftSpace(s))
	if m == "" {
		return math.NaN()
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return f
}

func trimLeftSpace(s string) string {
	for i, r := range s {
		switch r {
		case ' ', '\t', '\n', '\r', '\v', '\f':
			continue
		}
		return s[i:]
	}
	return ""
}

// BuildNewProduct validates the raw create arguments and builds the payload.
func BuildNewProduct(title, price, category string) (NewProduct, error) {
	p := ParsePrice(price)
	switch {
	case title == "":
		return NewProduct{}, fmt.Errorf("%w: title is required", ErrInvalidParams)
	case category == "":
		return NewProduct{}, fmt.Errorf("%w: category is required", ErrInvalidParams)
	case math.IsNaN(p) || math.IsInf(p, 0):
		return NewProduct{}, fmt.Errorf("%w: price '%s' is not a number", ErrInvalidParams, price)
	}
	return NewProduct{
		Title:       title,
		Price:       p,
		Description: PlaceholderDescription,
		Image:       PlaceholderImage,
		Category:    category,
	}, nil
}
