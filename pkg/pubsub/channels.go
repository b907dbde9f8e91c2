package pubsub

// ChannelEvents carries CAS service events.
const ChannelEvents = "cas:events"

// Event types.
const (
	EventSamplesSeeded   = "samples_seeded"
	EventFixtureExported = "fixture_exported"
)

// SamplesSeededPayload is published after a seed batch is stored.
type SamplesSeededPayload struct {
	BatchID  string `json:"batch_id"`
	Inserted int    `json:"inserted"`
	Skipped  int    `json:"skipped"`
}

// FixtureExportedPayload is published after a fixture file is written.
type FixtureExportedPayload struct {
	Key   string `json:"key"`
	Count int    `json:"count"`
}
