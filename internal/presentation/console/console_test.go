package console_test

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitorsantos08-ui/API/internal/application/usecase"
	"github.com/vitorsantos08-ui/API/internal/domain/event"
	"github.com/vitorsantos08-ui/API/internal/domain/model"
	"github.com/vitorsantos08-ui/API/internal/domain/port"
	"github.com/vitorsantos08-ui/API/internal/domain/service"
	"github.com/vitorsantos08-ui/API/internal/presentation/console"
	"github.com/vitorsantos08-ui/API/pkg/testutil"
)

type stubUsers struct {
	user model.UserRecord
	err  error
}

func (s *stubUsers) FetchUser(_ context.Context, _ int) (model.UserRecord, error) {
	return s.user, s.err
}

type stubProducts struct {
	product model.ProductRecord
	err     error
}

func (s *stubProducts) FetchProduct(_ context.Context, _ int) (model.ProductRecord, error) {
	return s.product, s.err
}

type countingSink struct {
	writes int
}

func (s *countingSink) Write(_ context.Context, _ *model.IntegrationAssessment) error {
	s.writes++
	return nil
}

type nopPublisher struct{}

func (nopPublisher) Publish(_ context.Context, _ ...event.DomainEvent) error { return nil }

func newConsole(users port.UserDirectory, products port.ProductCatalog, sink *countingSink, input string) (*console.Console, *bytes.Buffer) {
	var out bytes.Buffer
	renderer := console.NewRenderer(&out)
	validate := usecase.NewValidateIntegration(
		users,
		products,
		service.NewRiskScorer(),
		[]port.ResultSink{sink},
		nopPublisher{},
		renderer,
		slog.Default(),
		70,
	)
	ui := console.New(validate, renderer, strings.NewReader(input), "http://users.local", "http://products.local", 70)
	return ui, &out
}

func TestConsole_SingleEvaluationThenExit(t *testing.T) {
	sink := &countingSink{}
	ui, out := newConsole(
		&stubUsers{user: testutil.SampleUser()},
		&stubProducts{product: testutil.SampleProduct()},
		sink,
		"2\n4\nn\n",
	)

	err := ui.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sink.writes)
	assert.Contains(t, out.String(), "API INTEGRATION VALIDATOR")
	assert.Contains(t, out.String(), "John Smith")
	assert.Contains(t, out.String(), "risk score:")
	assert.Contains(t, out.String(), "integration authorized")
}

func TestConsole_RepeatsUntilDeclined(t *testing.T) {
	sink := &countingSink{}
	ui, _ := newConsole(
		&stubUsers{user: testutil.SampleUser()},
		&stubProducts{product: testutil.SampleProduct()},
		sink,
		"2\n4\ny\n3\n5\nn\n",
	)

	err := ui.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, sink.writes)
}

func TestConsole_ReportsBlockedPair(t *testing.T) {
	sink := &countingSink{}
	ui, out := newConsole(
		&stubUsers{user: testutil.HighRiskUser()},
		&stubProducts{product: testutil.HighRiskProduct()},
		sink,
		"2\n9\nn\n",
	)

	err := ui.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, sink.writes)
	assert.Contains(t, out.String(), "integration BLOCKED")
}

func TestConsole_InvalidInputReprompts(t *testing.T) {
	sink := &countingSink{}
	ui, out := newConsole(
		&stubUsers{user: testutil.SampleUser()},
		&stubProducts{product: testutil.SampleProduct()},
		sink,
		"abc\n2\n4\nn\n",
	)

	err := ui.Run(context.Background())
	require.NoError(t, err)

	assert.Contains(t, out.String(), "please enter a valid number")
	assert.Equal(t, 1, sink.writes)
}

func TestConsole_AbsenceKeepsLoopAlive(t *testing.T) {
	sink := &countingSink{}
	ui, out := newConsole(
		&stubUsers{err: port.ErrRecordNotFound},
		&stubProducts{product: testutil.SampleProduct()},
		sink,
		"99\n4\nn\n",
	)

	err := ui.Run(context.Background())
	require.NoError(t, err)

	// The observer renders the absence; nothing is persisted.
	assert.Contains(t, out.String(), "not found")
	assert.Equal(t, 0, sink.writes)
}

func TestConsole_ContextCancellation(t *testing.T) {
	sink := &countingSink{}
	ui, _ := newConsole(
		&stubUsers{user: testutil.SampleUser()},
		&stubProducts{product: testutil.SampleProduct()},
		sink,
		"2\n4\ny\n",
	)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := ui.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
