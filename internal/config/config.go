package config

import "net"

type Config interface {
	Host() string
	Port() string
	Address() string

	ViewsDir() string

	BufferSize() int

	Debug() bool

	// Warnings lists settings that were invalid and replaced by defaults.
	Warnings() []string
}

func Load() (Config, error) {
	if err := loadEnvFile(); err != nil {
		return nil, err
	}

	cfg, err := parse()
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *config) Host() string       { return c.host }
func (c *config) Port() string       { return c.port }
func (c *config) Address() string    { return net.JoinHostPort(c.host, c.port) }
func (c *config) ViewsDir() string   { return c.viewsDir }
func (c *config) BufferSize() int    { return c.bufferSize }
func (c *config) Debug() bool        { return c.debug }
func (c *config) Warnings() []string { return c.warnings }
