package postgres

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
)

// defaultLeakWarn tiempo máximo razonable de retención de una conexión antes
// de registrar una advertencia de posible fuga.
const defaultLeakWarn = 5 * time.Second

// acquireConn adquiere una conexión del pool y devuelve un release idempotente.
// Si la conexión se retiene más de warnAfter sin liberarse, se registra una
// advertencia (detección de fugas). warnAfter <= 0 desactiva el watchdog.
func acquireConn(ctx context.Context, pool *pgxpool.Pool, warnAfter time.Duration) (*pgxpool.Conn, func(), error) {
	conn, err := pool.Acquire(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("adquirir conexión: %w", err)
	}

	var timer *time.Timer
	if warnAfter > 0 {
		acquiredAt := time.Now()
		timer = time.AfterFunc(warnAfter, func() {
			log.Warn().
				Dur("retenida", time.Since(acquiredAt)).
				Msg("conexión retenida demasiado tiempo sin liberar, posible fuga")
		})
	}

	var once sync.Once
	release := func() {
		once.Do(func() {
			if timer != nil {
				timer.Stop()
			}
			conn.Release()
		})
	}
	return conn, release, nil
}
