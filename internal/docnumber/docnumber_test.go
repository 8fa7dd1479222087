package docnumber

import (
	"fmt"
	"regexp"
	"testing"
	"time"

	"shipdocs/internal/model"

	"github.com/stretchr/testify/assert"
)

func fixedClock() func() time.Time {
	t := time.Date(2025, time.March, 14, 9, 30, 0, 0, time.UTC)
	return func() time.Time { return t }
}

func TestPrefix(t *testing.T) {
	tests := []struct {
		docType string
		want    string
	}{
		{model.TypeInvoice, "INV"},
		{model.TypeBillOfLading, "BOL"},
		{model.TypeCustomerPaperwork, "CUST"},
		{model.TypePackingList, "PKL"},
		{model.TypeOther, "OTH"},
		{"Mystery", "DOC"},
		{"", "DOC"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Prefix(tt.docType))
	}
}

func TestGenerator_Random(t *testing.T) {
	g := New(WithClock(fixedClock()), WithRand(func(n int) int {
		assert.Equal(t, 9000, n)
		return 234
	}))

	got := g.Random(model.TypeInvoice)
	assert.Equal(t, "INV-20250314-1234", got)
}

func TestGenerator_RandomSuffixRange(t *testing.T) {
	g := New(WithClock(fixedClock()))
	re := regexp.MustCompile(`^BOL-20250314-\d{4}$`)
	for i := 0; i < 100; i++ {
		num := g.Random(model.TypeBillOfLading)
		assert.Regexp(t, re, num)
	}
}

func TestGenerator_Sequential(t *testing.T) {
	g := New(WithClock(fixedClock()))

	assert.Equal(t, "PKL-20250314-001", g.Sequential(model.TypePackingList, 1))
	assert.Equal(t, "DOC-20250314-042", g.Sequential("nope", 42))
	assert.Equal(t, fmt.Sprintf("OTH-20250314-%d", 100), g.Sequential(model.TypeOther, 100))
}
