package sink_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/infrastructure/sink"
	"github.com/vitorsantos08-ui/API/pkg/testutil"
)

func assessedPair(t *testing.T, score int, reasons []string) *model.IntegrationAssessment {
	t.Helper()
	a, err := model.NewIntegrationAssessment(testutil.SampleUser(), testutil.SampleProduct())
	require.NoError(t, err)
	require.NoError(t, a.Assess(score, reasons, 70))
	return a
}

func TestFileSink_WritesNamedResultFile(t *testing.T) {
	dir := t.TempDir()
	s, err := sink.NewFileSink(dir)
	require.NoError(t, err)

	a := assessedPair(t, 20, []string{"common domain"})
	require.NoError(t, s.Write(context.Background(), a))

	path := filepath.Join(dir, "result_user2_product4.json")
	_, err = os.Stat(path)
	require.NoError(t, err)
}

func TestFileSink_DocumentSchema(t *testing.T) {
	dir := t.TempDir()
	s, err := sink.NewFileSink(dir)
	require.NoError(t, err)

	a := assessedPair(t, 75, []string{"very high price", "category: electronics (risk 30)"})
	require.NoError(t, s.Write(context.Background(), a))

	data, err := os.ReadFile(filepath.Join(dir, "result_user2_product4.json"))
	require.NoError(t, err)

	var doc struct {
		Timestamp string `json:"timestamp"`
		User      struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Email string `json:"email"`
			City  string `json:"city"`
		} `json:"user"`
		Product struct {
			ID       int             `json:"id"`
			Title    string          `json:"title"`
			Price    json.RawMessage `json:"price"`
			Category string          `json:"category"`
		} `json:"product"`
		Antifraud struct {
			Score   int      `json:"score"`
			Blocked bool     `json:"blocked"`
			Reasons []string `json:"reasons"`
		} `json:"antifraud"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Regexp(t, regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`), doc.Timestamp)
	assert.Equal(t, 2, doc.User.ID)
	assert.Equal(t, "John Smith", doc.User.Name)
	assert.Equal(t, 4, doc.Product.ID)
	assert.Equal(t, 75, doc.Antifraud.Score)
	assert.True(t, doc.Antifraud.Blocked)
	assert.Len(t, doc.Antifraud.Reasons, 2)
}

func TestFileSink_PriceIsBareNumber(t *testing.T) {
	dir := t.TempDir()
	s, err := sink.NewFileSink(dir)
	require.NoError(t, err)

	a := assessedPair(t, 10, nil)
	require.NoError(t, s.Write(context.Background(), a))

	data, err := os.ReadFile(filepath.Join(dir, "result_user2_product4.json"))
	require.NoError(t, err)

	assert.Contains(t, string(data), `"price": 20`)
	assert.NotContains(t, string(data), `"price": "20"`)
}

func TestFileSink_OverwritesSamePair(t *testing.T) {
	dir := t.TempDir()
	s, err := sink.NewFileSink(dir)
	require.NoError(t, err)

	first := assessedPair(t, 20, []string{"common domain"})
	require.NoError(t, s.Write(context.Background(), first))

	second := assessedPair(t, 90, []string{"very high price"})
	require.NoError(t, s.Write(context.Background(), second))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)

	data, err := os.ReadFile(filepath.Join(dir, "result_user2_product4.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"score": 90`)
}

func TestNewFileSink_CreatesNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "results")

	_, err := sink.NewFileSink(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
