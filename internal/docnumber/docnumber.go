// Package docnumber derives human-readable document identifiers of the form
// PREFIX-YYYYMMDD-SUFFIX. The numbers are display identifiers, not keys:
// random suffixes can collide and uniqueness is never assumed.
package docnumber

import (
	"fmt"
	"math/rand"
	"time"

	"shipdocs/internal/model"
)

var prefixes = map[string]string{
	model.TypeInvoice:           "INV",
	model.TypeBillOfLading:      "BOL",
	model.TypeCustomerPaperwork: "CUST",
	model.TypePackingList:       "PKL",
	model.TypeOther:             "OTH",
}

// DefaultPrefix is used for any unrecognized document type.
const DefaultPrefix = "DOC"

// Prefix maps a document type to its number prefix.
func Prefix(documentType string) string {
	if p, ok := prefixes[documentType]; ok {
		return p
	}
	return DefaultPrefix
}

// Generator builds document numbers. The clock and randomness source are
// injectable so tests can pin both.
type Generator struct {
	now  func() time.Time
	intn func(n int) int
}

// Option customizes a Generator.
type Option func(*Generator)

// WithClock replaces the time source.
func WithClock(now func() time.Time) Option {
	return func(g *Generator) { g.now = now }
}

// WithRand replaces the randomness source. intn must behave like rand.Intn.
func WithRand(intn func(n int) int) Option {
	return func(g *Generator) { g.intn = intn }
}

// New returns a Generator backed by the wall clock and a seeded PRNG.
func New(opts ...Option) *Generator {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	g := &Generator{
		now:  time.Now,
		intn: rng.Intn,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Random produces PREFIX-YYYYMMDD-NNNN with a random 4-digit suffix in
// [1000, 9999]. This is the live upload path.
func (g *Generator) Random(documentType string) string {
	suffix := 1000 + g.intn(9000)
	return fmt.Sprintf("%s-%s-%d", Prefix(documentType), g.now().Format("20060102"), suffix)
}

// Sequential produces PREFIX-YYYYMMDD-NNN with a zero-padded index. This is
// the seed path, where deterministic suffixes make the sample data readable.
func (g *Generator) Sequential(documentType string, index int) string {
	return fmt.Sprintf("%s-%s-%03d", Prefix(documentType), g.now().Format("20060102"), index)
}
