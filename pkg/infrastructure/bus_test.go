package infrastructure_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cafeworks/go-workforce/pkg/application"
	"github.com/cafeworks/go-workforce/pkg/domain"
	"github.com/cafeworks/go-workforce/pkg/infrastructure"
)

type nopLogger struct{}

func (nopLogger) Info(ctx context.Context, msg string, fields map[string]interface{})  {}
func (nopLogger) Debug(ctx context.Context, msg string, fields map[string]interface{}) {}
func (nopLogger) Error(ctx context.Context, msg string, fields map[string]interface{}) {}
func (nopLogger) Trace(ctx context.Context, msg string, fields map[string]interface{}) {}

type greetData struct {
	Name string
}

type greetCommand struct {
	data greetData
}

func (c greetCommand) CommandName() string {
	return "Greet"
}

func (c greetCommand) Payload() greetData {
	return c.data
}

type greetHandler struct{}

func (greetHandler) Handle(ctx context.Context, command domain.Command[greetData]) (string, error) {
	return "hello " + command.Payload().Name, nil
}

type greetQuery struct {
	data greetData
}

func (q greetQuery) QueryName() string {
	return "FindGreeting"
}

func (q greetQuery) Payload() greetData {
	return q.data
}

type greetQueryHandler struct{}

func (greetQueryHandler) Handle(ctx context.Context, query domain.Query[greetData]) (string, error) {
	return "greeting for " + query.Payload().Name, nil
}

func TestCommandBusDispatch(t *testing.T) {
	bus := infrastructure.NewCommandBus(nopLogger{})
	infrastructure.RegisterCommandHandler[domain.Command[greetData], greetData, string](bus, "Greet", greetHandler{})

	result, err := infrastructure.DispatchCommand[domain.Command[greetData], greetData, string](context.Background(), bus, greetCommand{data: greetData{Name: "Ada"}})
	require.NoError(t, err)
	assert.Equal(t, "hello Ada", result)
}

func TestCommandBusDispatchWithoutHandler(t *testing.T) {
	bus := infrastructure.NewCommandBus(nopLogger{})

	_, err := infrastructure.DispatchCommand[domain.Command[greetData], greetData, string](context.Background(), bus, greetCommand{})
	assert.True(t, errors.Is(err, infrastructure.ErrNoHandler))
}

func TestCommandBusDispatchMismatchedResult(t *testing.T) {
	bus := infrastructure.NewCommandBus(nopLogger{})
	infrastructure.RegisterCommandHandler[domain.Command[greetData], greetData, string](bus, "Greet", greetHandler{})

	// The handler returns a string; asking for an int must fail fast.
	_, err := infrastructure.DispatchCommand[domain.Command[greetData], greetData, int](context.Background(), bus, greetCommand{})
	assert.True(t, errors.Is(err, infrastructure.ErrHandlerMismatch))
}

func TestCommandBusAssertRegistered(t *testing.T) {
	bus := infrastructure.NewCommandBus(nopLogger{})
	infrastructure.RegisterCommandHandler[domain.Command[greetData], greetData, string](bus, "Greet", greetHandler{})

	assert.NoError(t, bus.AssertRegistered("Greet"))

	err := bus.AssertRegistered("Greet", "Farewell")
	require.Error(t, err)
	assert.True(t, errors.Is(err, infrastructure.ErrNoHandler))
	assert.Contains(t, err.Error(), "Farewell")
}

func TestQueryBusDispatch(t *testing.T) {
	bus := infrastructure.NewQueryBus(nopLogger{})
	infrastructure.RegisterQueryHandler[domain.Query[greetData], greetData, string](bus, "FindGreeting", greetQueryHandler{})

	result, err := infrastructure.DispatchQuery[domain.Query[greetData], greetData, string](context.Background(), bus, greetQuery{data: greetData{Name: "Ada"}})
	require.NoError(t, err)
	assert.Equal(t, "greeting for Ada", result)
}

func TestQueryBusDispatchWithoutHandler(t *testing.T) {
	bus := infrastructure.NewQueryBus(nopLogger{})

	_, err := infrastructure.DispatchQuery[domain.Query[greetData], greetData, string](context.Background(), bus, greetQuery{})
	assert.True(t, errors.Is(err, infrastructure.ErrNoHandler))
}

func TestQueryBusAssertRegistered(t *testing.T) {
	bus := infrastructure.NewQueryBus(nopLogger{})

	err := bus.AssertRegistered("FindGreeting")
	require.Error(t, err)
	assert.True(t, errors.Is(err, infrastructure.ErrNoHandler))
}

type testEvent struct {
	name    string
	message string
}

func (e testEvent) EventName() string {
	return e.name
}

func (e testEvent) Payload() string {
	return e.message
}

type countingEventHandler struct {
	calls *atomic.Int64
	err   error
}

func (h countingEventHandler) Handle(ctx context.Context, event domain.Event[string]) error {
	h.calls.Add(1)
	return h.err
}

func TestSimpleEventBusPublish(t *testing.T) {
	bus := infrastructure.NewSimpleEventBus[domain.Event[string], string](nopLogger{})

	var calls atomic.Int64
	bus.RegisterHandler("Happened", countingEventHandler{calls: &calls})
	bus.RegisterHandler("Happened", countingEventHandler{calls: &calls})

	err := bus.Publish(context.Background(), testEvent{name: "Happened", message: "payload"})
	require.NoError(t, err)
	assert.Equal(t, int64(2), calls.Load())
}

func TestSimpleEventBusPublishWithoutHandlers(t *testing.T) {
	bus := infrastructure.NewSimpleEventBus[domain.Event[string], string](nopLogger{})

	assert.NoError(t, bus.Publish(context.Background(), testEvent{name: "Ignored"}))
}

func TestSimpleEventBusPublishHandlerError(t *testing.T) {
	bus := infrastructure.NewSimpleEventBus[domain.Event[string], string](nopLogger{})

	var calls atomic.Int64
	handlerErr := errors.New("boom")
	bus.RegisterHandler("Happened", countingEventHandler{calls: &calls, err: handlerErr})

	err := bus.Publish(context.Background(), testEvent{name: "Happened"})
	assert.Equal(t, handlerErr, err)
}

var _ application.AppLogger = nopLogger{}
