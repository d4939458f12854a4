package utils

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/localnerve/marketdb/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlainTable(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, config.OutputPlain)

	n := p.Table([]string{"storeid", "latitude"}, [][]string{{"1", "10.5"}, {"2", "25"}})
	assert.Equal(t, 2, n)
	assert.Equal(t, "storeid\tlatitude\t\n1\t10.5\t\n2\t25\t\n", out.String())
}

func TestEmptyTablePrintsNothing(t *testing.T) {
	var out bytes.Buffer
	for _, format := range []string{config.OutputPlain, config.OutputTable} {
		p := NewPrinter(&out, &out, format)
		assert.Zero(t, p.Table([]string{"a"}, nil))
	}
	assert.Empty(t, out.String())
}

func TestStyledTableContainsCells(t *testing.T) {
	var out bytes.Buffer
	p := NewPrinter(&out, &out, "")

	n := p.Table([]string{"productname", "numberofunits"}, [][]string{{"Widget", "40"}})
	assert.Equal(t, 1, n)
	assert.Contains(t, out.String(), "productname")
	assert.Contains(t, out.String(), "Widget")
	assert.Contains(t, out.String(), "40")
}

func TestMessagesGoToTheirStreams(t *testing.T) {
	var out, errOut bytes.Buffer
	p := NewPrinter(&out, &errOut, config.OutputPlain)

	p.Title("MAIN MENU")
	p.Success("Product ordered!")
	p.Warning("That store is too far from you!")
	p.Error("connection refused")

	assert.Equal(t, "MAIN MENU\n---------\nProduct ordered!\nThat store is too far from you!\n", out.String())
	assert.Equal(t, "connection refused\n", errOut.String())
}

func TestPingService(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	host, port, err := net.SplitHostPort(ln.Addr().String())
	require.NoError(t, err)

	assert.NoError(t, PingService(host, port, time.Second))
	assert.Error(t, PingService(host, "", time.Second))
}
