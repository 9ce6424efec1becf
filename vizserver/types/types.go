package types

// FrameSource is the arena server as seen from the viz: a stream of
// committed frames plus a little metadata for the landing page.
type FrameSource interface {
	SubscribeStateObservation() chan []byte
	GetTicksPerSecond() int
	GetNbUnits() int
}
