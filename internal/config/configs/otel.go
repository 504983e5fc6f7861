package configs

// OTel configures trace export. Tracing stays a no-op while Endpoint is empty.
type OTel struct {
	// Endpoint is the OTLP/HTTP collector host:port, e.g. "localhost:4318".
	Endpoint    string  `env:"ENDPOINT"`
	Insecure    bool    `env:"INSECURE" envDefault:"true"`
	ServiceName string  `env:"SERVICE_NAME" envDefault:"milestone-escrow"`
	SampleRatio float64 `env:"SAMPLE_RATIO" envDefault:"1"`
}

// Enabled reports whether an exporter should be started.
func (c OTel) Enabled() bool {
	return c.Endpoint != ""
}
