package db

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"petcare-go/internal/config"
)

// Ping opens one dedicated connection, asks for the server version and
// closes it. It does not touch the pool, so it works before the schema exists.
func Ping(ctx context.Context, cfg config.DBConfig) (string, error) {
	timeout := cfg.PingTimeout
	if timeout == 0 {
		timeout = defaultPingTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	conn, err := pgx.Connect(ctx, cfg.GetDSN())
	if err != nil {
		return "", fmt.Errorf("connect: %w", err)
	}
	defer conn.Close(context.Background())

	var version string
	if err := conn.QueryRow(ctx, "SHOW server_version").Scan(&version); err != nil {
		return "", fmt.Errorf("server version: %w", err)
	}
	return version, nil
}
