package printer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDocumentDefaultWidth(t *testing.T) {
	d := NewDocument(0)
	assert.Equal(t, 42, d.width)

	d = NewDocument(32)
	assert.Equal(t, 32, d.width)
}

func TestKeyValueRightAlignsAmount(t *testing.T) {
	d := NewDocument(20)
	d.KeyValue("Subtotal:", "194.40")

	lines := strings.Split(string(d.Bytes()), string(rune(LF)))
	line := lines[0][2:] // skip ESC @
	assert.Len(t, line, 20)
	assert.True(t, strings.HasPrefix(line, "Subtotal:"))
	assert.True(t, strings.HasSuffix(line, "194.40"))
}

func TestItemLineTruncatesLongNames(t *testing.T) {
	d := NewDocument(20)
	d.ItemLine(2, "Double Bacon Cheeseburger Deluxe", "100.00")

	lines := strings.Split(string(d.Bytes()), string(rune(LF)))
	line := lines[0][2:]
	assert.Len(t, line, 20)
	assert.True(t, strings.HasSuffix(line, "100.00"))
}

func TestNetworkPrinterDefaultsPort(t *testing.T) {
	p := NewNetworkPrinter("192.168.1.50").(*networkPrinter)
	assert.Equal(t, "192.168.1.50:9100", p.address)

	p = NewNetworkPrinter("192.168.1.50:9101").(*networkPrinter)
	assert.Equal(t, "192.168.1.50:9101", p.address)
}
