package domain

import (
	"bufio"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"
)

func TestStdioTransportReceive(t *testing.T) {
	input := `{"jsonrpc":"2.0","id":1,"method":"tools/list"}` + "\n"
	transport := NewStdioTransportWithIO(strings.NewReader(input), io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := transport.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	select {
	case req := <-transport.Receive():
		if req.Method != "tools/list" {
			t.Errorf("method = %q, want %q", req.Method, "tools/list")
		}
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for request")
	}
}

func TestStdioTransportSend(t *testing.T) {
	var out strings.Builder
	transport := NewStdioTransportWithIO(strings.NewReader(""), &out)

	resp := &Response{ID: 1, Result: "ok"}
	if err := transport.Send(resp); err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	line := out.String()
	if !strings.HasSuffix(line, "\n") {
		t.Error("response should end with a newline")
	}

	var decoded Response
	if err := json.Unmarshal([]byte(strings.TrimSpace(line)), &decoded); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if decoded.JSONRPC != "2.0" {
		t.Errorf("jsonrpc = %q, want %q", decoded.JSONRPC, "2.0")
	}
}

func TestStdioTransportRejectsMalformedInput(t *testing.T) {
	input := "this is not json\n" +
		`{"jsonrpc":"1.0","id":2,"method":"x"}` + "\n"
	pr, pw := io.Pipe()
	transport := NewStdioTransportWithIO(strings.NewReader(input), pw)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := transport.Start(ctx); err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	scanner := bufio.NewScanner(pr)

	wantCodes := []int{ParseError, InvalidRequest}
	for _, wantCode := range wantCodes {
		if !scanner.Scan() {
			t.Fatalf("expected an error response for code %d", wantCode)
		}
		var resp Response
		if err := json.Unmarshal(scanner.Bytes(), &resp); err != nil {
			t.Fatalf("invalid JSON response: %v", err)
		}
		if resp.Error == nil {
			t.Fatal("expected an error object")
		}
		if resp.Error.Code != wantCode {
			t.Errorf("error code = %d, want %d", resp.Error.Code, wantCode)
		}
	}
}

func TestStdioTransportSendAfterClose(t *testing.T) {
	transport := NewStdioTransportWithIO(strings.NewReader(""), io.Discard)
	if err := transport.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := transport.Send(&Response{ID: 1}); err == nil {
		t.Error("Send() after Close() should fail")
	}
}
