package session

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/koscakluka/ema-callui/core/assistant"
	"github.com/koscakluka/ema-callui/core/events"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const defaultCloseTimeout = 2 * time.Second

var (
	// ErrCallInProgress is returned by Start while a call is live.
	ErrCallInProgress = errors.New("call already in progress")
	// ErrMissingKey is returned by NewHostedClient without a public key.
	ErrMissingKey = errors.New("public key is required")
	// ErrMissingBaseURL is returned by NewHostedClient without a gateway URL.
	ErrMissingBaseURL = errors.New("gateway base url is required")
)

// HostedClient reaches the hosted assistant through a call gateway. There is
// no default gateway: the base URL must point at a service that speaks the
// protocol below.
//
//   - POST {base}/call/web with {"assistant": options} and the public key as
//     bearer token answers {"id", "eventsUrl", "monitor": {"controlUrl"}}.
//   - eventsUrl is a websocket carrying one JSON frame per event, typed by
//     its "type" field (see decodeFrame).
//   - POST {"type": "end-call"} to controlUrl ends the call; the gateway then
//     sends call-end and closes the socket.
type HostedClient struct {
	Emitter

	publicKey    string
	baseURL      string
	httpClient   *http.Client
	dialer       *websocket.Dialer
	closeTimeout time.Duration

	mu   sync.Mutex
	call *hostedCall

	receivedEvents metric.Int64Counter
}

type hostedCall struct {
	id         string
	controlURL string
	conn       *websocket.Conn

	stopping bool
	ended    bool
}

// HostedOption configures a [HostedClient].
type HostedOption func(*HostedClient)

// WithBaseURL sets the gateway calls are created on. Required.
func WithBaseURL(baseURL string) HostedOption {
	return func(c *HostedClient) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// WithHTTPClient replaces the instrumented default HTTP client.
func WithHTTPClient(client *http.Client) HostedOption {
	return func(c *HostedClient) { c.httpClient = client }
}

// WithDialer replaces the websocket dialer used for the events socket.
func WithDialer(dialer *websocket.Dialer) HostedOption {
	return func(c *HostedClient) { c.dialer = dialer }
}

// WithCloseTimeout bounds how long Stop waits for the gateway to close the
// events socket before the call is ended locally.
func WithCloseTimeout(timeout time.Duration) HostedOption {
	return func(c *HostedClient) { c.closeTimeout = timeout }
}

// NewHostedClient returns a client for the gateway set with [WithBaseURL].
// It fails with [ErrMissingKey] or [ErrMissingBaseURL].
func NewHostedClient(publicKey string, opts ...HostedOption) (*HostedClient, error) {
	if publicKey == "" {
		return nil, ErrMissingKey
	}

	c := &HostedClient{
		publicKey:  publicKey,
		httpClient: &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport,
			otelhttp.WithSpanNameFormatter(func(operation string, r *http.Request) string {
				return "hosted assistant " + r.Method + " " + r.URL.Path
			}),
		)},
		dialer:       websocket.DefaultDialer,
		closeTimeout: defaultCloseTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.baseURL == "" {
		return nil, ErrMissingBaseURL
	}

	counter, err := meter.Int64Counter("callui.session.events",
		metric.WithDescription("Events received from the hosted assistant"))
	if err != nil {
		return nil, fmt.Errorf("failed to create event counter: %w", err)
	}
	c.receivedEvents = counter

	return c, nil
}

type startCallRequest struct {
	Assistant assistant.Options `json:"assistant"`
}

type startCallResponse struct {
	ID        string `json:"id"`
	EventsURL string `json:"eventsUrl"`
	Monitor   struct {
		ControlURL string `json:"controlUrl"`
	} `json:"monitor"`
}

type apiError struct {
	Message string `json:"message"`
}

// Start creates a call with the given assistant and starts delivering its
// events. Failures are returned and also emitted as error events.
func (c *HostedClient) Start(ctx context.Context, options assistant.Options) error {
	ctx, span := tracer.Start(ctx, "start call", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.call != nil {
		span.RecordError(ErrCallInProgress)
		span.SetStatus(codes.Error, ErrCallInProgress.Error())
		c.Emit(events.NewError(ErrCallInProgress.Error()))
		return ErrCallInProgress
	}

	created, err := c.createCall(ctx, options)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.Emit(events.NewError(err.Error()))
		return err
	}
	span.SetAttributes(attribute.String("call.id", created.ID))

	conn, _, err := c.dialer.DialContext(ctx, created.EventsURL,
		http.Header{"Authorization": {"Bearer " + c.publicKey}})
	if err != nil {
		err = fmt.Errorf("failed to open events socket: %w", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		c.Emit(events.NewError(err.Error()))
		return err
	}

	call := &hostedCall{id: created.ID, controlURL: created.Monitor.ControlURL, conn: conn}
	c.call = call
	go c.readEvents(context.WithoutCancel(ctx), call)

	logger.InfoContext(ctx, "call started", "call_id", call.id)
	return nil
}

func (c *HostedClient) createCall(ctx context.Context, options assistant.Options) (*startCallResponse, error) {
	body, err := json.Marshal(startCallRequest{Assistant: options})
	if err != nil {
		return nil, fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/call/web", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.publicKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("error reading response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var parsed apiError
		if json.Unmarshal(respBody, &parsed) == nil && parsed.Message != "" {
			return nil, fmt.Errorf("failed to create call: %s", parsed.Message)
		}
		return nil, fmt.Errorf("failed to create call: non-OK HTTP status: %s", resp.Status)
	}

	var created startCallResponse
	if err := json.Unmarshal(respBody, &created); err != nil {
		return nil, fmt.Errorf("error unmarshalling response: %w", err)
	}
	if created.EventsURL == "" {
		return nil, fmt.Errorf("failed to create call: response without events url")
	}
	return &created, nil
}

// Stop ends the current call. The end of the call is observed through the
// call-end event. Stopping without a call is a no-op.
func (c *HostedClient) Stop(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "stop call", trace.WithSpanKind(trace.SpanKindClient))
	defer span.End()

	c.mu.Lock()
	call := c.call
	if call == nil {
		c.mu.Unlock()
		return nil
	}
	call.stopping = true
	c.mu.Unlock()
	span.SetAttributes(attribute.String("call.id", call.id))

	var stopErr error
	if call.controlURL != "" {
		if err := c.sendControl(ctx, call.controlURL, "end-call"); err != nil {
			stopErr = fmt.Errorf("failed to end call: %w", err)
			span.RecordError(stopErr)
			span.SetStatus(codes.Error, stopErr.Error())
			c.Emit(events.NewError(stopErr.Error()))
		}
	}

	closeMsg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
	if err := call.conn.WriteControl(websocket.CloseMessage, closeMsg, time.Now().Add(time.Second)); err != nil {
		// The reader ends the call once the socket is gone.
		_ = call.conn.Close()
	} else {
		// A gateway that never answers the close must not keep the call alive.
		_ = call.conn.SetReadDeadline(time.Now().Add(c.closeTimeout))
	}

	return stopErr
}

func (c *HostedClient) sendControl(ctx context.Context, controlURL string, controlType string) error {
	body, err := json.Marshal(struct {
		Type string `json:"type"`
	}{Type: controlType})
	if err != nil {
		return fmt.Errorf("error marshalling JSON: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, controlURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("error creating HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error sending request: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("non-OK HTTP status: %s", resp.Status)
	}
	return nil
}

func (c *HostedClient) readEvents(ctx context.Context, call *hostedCall) {
	defer call.conn.Close()

	for {
		msgType, data, err := call.conn.ReadMessage()
		if err != nil {
			c.finishCall(ctx, call, err)
			return
		}
		if msgType != websocket.TextMessage {
			continue
		}

		event, err := decodeFrame(data)
		if err != nil {
			logger.WarnContext(ctx, "skipping events frame", "call_id", call.id, "error", err)
			continue
		}
		c.receivedEvents.Add(ctx, 1, metric.WithAttributes(attribute.String("event.kind", string(event.Kind()))))

		if event.Kind() == events.KindCallEnd {
			c.mu.Lock()
			call.ended = true
			c.mu.Unlock()
		}
		c.Emit(event)
	}
}

// finishCall releases the call once its socket is gone, making sure call-end
// is emitted exactly once.
func (c *HostedClient) finishCall(ctx context.Context, call *hostedCall, readErr error) {
	c.mu.Lock()
	if c.call == call {
		c.call = nil
	}
	stopping, ended := call.stopping, call.ended
	c.mu.Unlock()

	normal := stopping || websocket.IsCloseError(readErr, websocket.CloseNormalClosure, websocket.CloseGoingAway)
	if !normal {
		logger.ErrorContext(ctx, "events socket failed", "call_id", call.id, "error", readErr)
		c.Emit(events.NewError(fmt.Sprintf("connection lost: %v", readErr)))
	}
	if !ended {
		c.Emit(events.NewCallEnded())
	}
	logger.InfoContext(ctx, "call ended", "call_id", call.id)
}
