package middleware

import (
	"context"
	"testing"
	"time"

	"stompsession/frame"
)

func testMessage(destination string) *frame.Frame {
	f := frame.New(frame.CmdMessage)
	f.Append(frame.HdrDestination, destination)
	return f
}

func ackHandler(ctx context.Context, msg *frame.Frame) frame.AckOrNack {
	return frame.Ack
}

func slowHandler(ctx context.Context, msg *frame.Frame) frame.AckOrNack {
	time.Sleep(200 * time.Millisecond)
	return frame.Ack
}

func TestLogging(t *testing.T) {
	handler := LoggingMiddleware()(ackHandler)

	decision := handler(context.Background(), testMessage("/queue/orders"))
	if decision != frame.Ack {
		t.Fatalf("expect Ack, got %v", decision)
	}
}

func TestTimeoutPass(t *testing.T) {
	handler := TimeOutMiddleware(500 * time.Millisecond)(ackHandler)

	decision := handler(context.Background(), testMessage("/queue/orders"))
	if decision != frame.Ack {
		t.Fatalf("expect Ack, got %v", decision)
	}
}

func TestTimeoutExceeded(t *testing.T) {
	handler := TimeOutMiddleware(50 * time.Millisecond)(slowHandler)

	decision := handler(context.Background(), testMessage("/queue/orders"))
	if decision != frame.Nack {
		t.Fatalf("expect Nack on timeout, got %v", decision)
	}
}

func TestRateLimit(t *testing.T) {
	// rate=1 per second, burst=2 -> first 2 pass immediately, third is rejected
	handler := RateLimitMiddleware(1, 2)(ackHandler)
	msg := testMessage("/queue/orders")

	for i := 0; i < 2; i++ {
		decision := handler(context.Background(), msg)
		if decision != frame.Ack {
			t.Fatalf("message %d should pass, got %v", i, decision)
		}
	}

	decision := handler(context.Background(), msg)
	if decision != frame.Nack {
		t.Fatalf("message 3 should be rate limited, got %v", decision)
	}
}

func TestChain(t *testing.T) {
	chained := Chain(LoggingMiddleware(), TimeOutMiddleware(500*time.Millisecond))
	handler := chained(ackHandler)

	decision := handler(context.Background(), testMessage("/queue/orders"))
	if decision != frame.Ack {
		t.Fatalf("expect Ack, got %v", decision)
	}
}
