package kafka

// Config holds connection parameters for the assessment event stream.
type Config struct {
	Brokers []string
	Topic   string
}
