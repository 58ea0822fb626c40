package batch_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warikango/warikan/internal/batch"
	"github.com/warikango/warikan/internal/bill"
	"github.com/warikango/warikan/internal/report"
)

const izakayaBill = `{
	"date": "2024-03-21",
	"location": "Izakaya",
	"tipPercentage": 8,
	"items": [
		{"name": "Beer", "price": 6.40, "person": "Alice"},
		{"name": "Ramen", "price": 8.90, "person": "Bob"},
		{"name": "Gyoza", "price": 12.30, "isShared": true},
		{"name": "Edamame", "price": 4.20, "isShared": true}
	]
}`

const pizzeriaBill = `{
	"date": "2024-01-05",
	"location": "Pizzeria",
	"tipPercentage": 10,
	"items": [
		{"name": "Pizza", "price": 20, "isShared": true},
		{"name": "Seat A", "price": 0, "person": "A"},
		{"name": "Seat B", "price": 0, "person": "B"}
	]
}`

func writeBills(t *testing.T, dir string, bills map[string]string) {
	t.Helper()
	for name, content := range bills {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
}

func TestProcessorRunText(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeBills(t, inDir, map[string]string{
		"izakaya.json":  izakayaBill,
		"pizzeria.json": pizzeriaBill,
		"broken.json":   `{"tipPercentage": -1, "items": [{"name": "a", "price": 1, "isShared": true}]}`,
		"notes.txt":     "not a bill",
	})

	p := batch.New(bill.NewService(), batch.FormatText, 2)
	summary, err := p.Run(context.Background(), inDir, outDir)
	require.NoError(t, err)

	assert.Equal(t, 2, summary.Processed)
	require.Len(t, summary.Failures, 1)
	assert.Equal(t, "broken.json", summary.Failures[0].File)
	assert.NotEmpty(t, summary.Failures[0].Reason)

	data, err := os.ReadFile(filepath.Join(outDir, "izakaya.report.txt"))
	require.NoError(t, err)
	text := string(data)
	assert.Contains(t, text, "Date:     2024年3月21日")
	assert.Contains(t, text, "Location: Izakaya")
	assert.Contains(t, text, "Total:    34.30")
	assert.Contains(t, text, "Alice")
	assert.Contains(t, text, "Bob")

	// Non-bill and failed files produce no reports.
	_, err = os.Stat(filepath.Join(outDir, "broken.report.txt"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(outDir, "notes.report.txt"))
	assert.True(t, os.IsNotExist(err))
}

func TestProcessorRunJSON(t *testing.T) {
	inDir := t.TempDir()
	outDir := t.TempDir()
	writeBills(t, inDir, map[string]string{"pizzeria.json": pizzeriaBill})

	p := batch.New(bill.NewService(), batch.FormatJSON, 1)
	summary, err := p.Run(context.Background(), inDir, outDir)
	require.NoError(t, err)
	require.Equal(t, 1, summary.Processed)
	require.Empty(t, summary.Failures)

	data, err := os.ReadFile(filepath.Join(outDir, "pizzeria.report.json"))
	require.NoError(t, err)

	var doc report.Document
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "2024年1月5日", doc.Date)
	assert.InDelta(t, 22.0, doc.TotalAmount, 1e-9)
	require.Len(t, doc.Items, 2)
}

func TestProcessorRunMissingDir(t *testing.T) {
	p := batch.New(bill.NewService(), batch.FormatText, 1)
	_, err := p.Run(context.Background(), filepath.Join(t.TempDir(), "nope"), t.TempDir())
	require.Error(t, err)
}
