package main

import (
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitForShutdown_SenalDeApagado(t *testing.T) {
	quit := make(chan os.Signal, 1)
	quit <- syscall.SIGTERM

	assert.NoError(t, waitForShutdown(make(chan error), quit))
}

func TestWaitForShutdown_PuertoOcupadoNoBloquea(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	listenErr := make(chan error, 1)
	go func() { listenErr <- app.Listen(busy.Addr().String()) }()

	done := make(chan error, 1)
	go func() { done <- waitForShutdown(listenErr, make(chan os.Signal)) }()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("waitForShutdown siguió esperando con el puerto ocupado")
	}
}
