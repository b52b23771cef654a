//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is the slice of pgx that fixture inserts need; both *pgxpool.Pool
// and pgx.Tx satisfy it.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// CreateTestMember inserts a member row directly. The pwd column stays NULL,
// so the member can only be used for flows that do not log in with a
// password; register through the API when a usable credential is needed.
func CreateTestMember(t *testing.T, db DBLike, id, name, email string) string {
	t.Helper()

	parts := strings.SplitN(email, "@", 2)
	require.Len(t, parts, 2, "test email must contain a domain")

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO members (id, name, email_name, email_domain, grade, provider)
		VALUES ($1, $2, $3, $4, 'BRONZE', 'local')
		ON CONFLICT (id) DO NOTHING`,
		id, name, parts[0], parts[1])
	require.NoError(t, err)

	return id
}

// CreateTestOrder inserts a paid performance order owned by userID and
// returns its order id.
func CreateTestOrder(t *testing.T, db DBLike, orderID, userID, title string, date time.Time) string {
	t.Helper()

	ctx := context.Background()
	_, err := db.Exec(ctx, `
		INSERT INTO performance_orders
			(order_id, user_id, title, date, venue, total_price, payment_method, order_status, order_date)
		VALUES ($1, $2, $3, $4, '샤롯데씨어터', 130000, 'card', '결제완료', now())
		ON CONFLICT (order_id) DO NOTHING`,
		orderID, userID, title, date)
	require.NoError(t, err)

	return orderID
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables between sub-tests
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	if _, err := pool.Exec(ctx, sqlAny.(string)); err != nil {
		return err
	}

	// Order-id prefixes keep counting across tests; TRUNCATE does not touch
	// standalone sequences.
	return nil
}
