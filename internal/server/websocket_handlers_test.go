package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gulftech/idparse/internal/testutil"
)

// mockWebSocketConn is a mock implementation of websocket.Conn for testing.
type mockWebSocketConn struct {
	sentMessages []sentMessage
}

type sentMessage struct {
	messageType int
	data        []byte
}

func (m *mockWebSocketConn) WriteMessage(messageType int, data []byte) error {
	m.sentMessages = append(m.sentMessages, sentMessage{
		messageType: messageType,
		data:        data,
	})
	return nil
}

func TestSendWebSocketResponse(t *testing.T) {
	server := newTestServer(t)
	conn := &mockWebSocketConn{}

	server.sendWebSocketResponse(conn, WebSocketExtractResponse{
		Type:      "extract_response",
		Status:    "completed",
		RequestID: "42",
	})

	require.Len(t, conn.sentMessages, 1)
	assert.Equal(t, websocket.TextMessage, conn.sentMessages[0].messageType)

	var response WebSocketExtractResponse
	require.NoError(t, json.Unmarshal(conn.sentMessages[0].data, &response))
	assert.Equal(t, "completed", response.Status)
	assert.Equal(t, "42", response.RequestID)
}

func TestSendWebSocketError(t *testing.T) {
	server := newTestServer(t)
	conn := &mockWebSocketConn{}

	server.sendWebSocketError(conn, "invalid_request", "bad input")

	require.Len(t, conn.sentMessages, 1)

	var response WebSocketExtractResponse
	require.NoError(t, json.Unmarshal(conn.sentMessages[0].data, &response))
	assert.Equal(t, "error", response.Type)
	assert.Equal(t, "error", response.Status)
	assert.Equal(t, "invalid_request", response.ErrorType)
	assert.Equal(t, "bad input", response.Error)
}

func dialTestWebSocket(t *testing.T, server *Server) *websocket.Conn {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(server.extractWebSocketHandler))
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readResponse(t *testing.T, conn *websocket.Conn) WebSocketExtractResponse {
	t.Helper()
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	var response WebSocketExtractResponse
	require.NoError(t, json.Unmarshal(data, &response))
	return response
}

func TestExtractWebSocketRoundTrip(t *testing.T) {
	server := newTestServer(t)
	conn := dialTestWebSocket(t, server)

	req := WebSocketExtractRequest{
		Document: "id_front",
		Text:     testutil.IDFrontText,
	}
	require.NoError(t, conn.WriteJSON(req))

	processing := readResponse(t, conn)
	assert.Equal(t, "processing", processing.Status)
	assert.NotEmpty(t, processing.RequestID)

	completed := readResponse(t, conn)
	assert.Equal(t, "completed", completed.Status)
	assert.Equal(t, processing.RequestID, completed.RequestID)

	result, ok := completed.Result.(map[string]interface{})
	require.True(t, ok)
	fields, ok := result["fields"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "784-1985-1234567-1", fields["id_number"])
}

func TestExtractWebSocketInvalidDocument(t *testing.T) {
	server := newTestServer(t)
	conn := dialTestWebSocket(t, server)

	require.NoError(t, conn.WriteJSON(WebSocketExtractRequest{
		Document: "licence",
		Text:     "x",
	}))

	processing := readResponse(t, conn)
	assert.Equal(t, "processing", processing.Status)

	errResp := readResponse(t, conn)
	assert.Equal(t, "error", errResp.Status)
	assert.Equal(t, "invalid_request", errResp.ErrorType)
}

func TestExtractWebSocketMalformedMessage(t *testing.T) {
	server := newTestServer(t)
	conn := dialTestWebSocket(t, server)

	require.NoError(t, conn.WriteMessage(websocket.TextMessage, []byte("{not json")))

	errResp := readResponse(t, conn)
	assert.Equal(t, "error", errResp.Status)
	assert.Equal(t, "invalid_request", errResp.ErrorType)
}
