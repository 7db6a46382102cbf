package sse

import "time"

const (
	BroadcastBufferSize = 100 // hub queue shared by every game
	ClientEventBuffer   = 50  // per stream; a full buffer drops events for that client
	ClientChannelBuffer = 10  // pending register and unregister requests

	KeepaliveInterval = 30 * time.Second
)

// Event types that only exist on the stream
const (
	EventTypeConnected = "connected"
	EventTypeKeepalive = "keepalive"
)

// TypesQueryParam narrows a stream, e.g. ?types=vineyard.day.advanced,vineyard.wine.sold
const TypesQueryParam = "types"

const (
	LogMsgClientConnected    = "SSE client connected"
	LogMsgClientDisconnected = "SSE client disconnected"
	LogMsgEventBroadcast     = "Forwarded bus event to SSE"
	LogMsgEventDropped       = "SSE hub queue full, event dropped"
	LogMsgWriteError         = "Failed to encode SSE event"
	LogMsgSubscribed         = "SSE forwarding bus events"
)
