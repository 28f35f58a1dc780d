package cmd

import (
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lurkerbot/lurker/internal/config"
)

func TestContainer_ConnectionFactoryUsesDialTimeout(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		// hold the connection open without ever answering the handshake
		conn, err := ln.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		time.Sleep(5 * time.Second)
	}()

	dialTimeout := 100 * time.Millisecond
	container, err := NewContainer(&config.Settings{DialTimeout: &dialTimeout})
	require.NoError(t, err)
	defer container.Close()

	factory := container.NewConnectionFactory("ws://"+ln.Addr().String(), "")

	start := time.Now()
	conn, err := factory()

	assert.Nil(t, conn)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestNewContainer_FillsTransportTimeouts(t *testing.T) {
	writeTimeout := 3 * time.Second
	container, err := NewContainer(&config.Settings{WriteTimeout: &writeTimeout})
	require.NoError(t, err)

	assert.Equal(t, config.DefaultDialTimeout, *container.Settings.DialTimeout)
	assert.Equal(t, writeTimeout, *container.Settings.WriteTimeout)
}
