package repository

import (
	"context"
	"errors"

	"curtaincall/internal/domain/member"
	"curtaincall/internal/infra"
	"curtaincall/internal/infra/db"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type MemberRepository struct {
	db db.DBTX
}

func NewMemberRepository(db db.DBTX) *MemberRepository {
	return &MemberRepository{db: db}
}

const uniqueViolationCode = "23505"

func isDuplicateKey(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}

// Register stores a local account. hashedPwd is the bcrypt hash, never the
// raw password.
func (r *MemberRepository) Register(ctx context.Context, m *member.Member, hashedPwd string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO members (id, pwd, name, phone, email_name, email_domain, grade, provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		m.ID, hashedPwd, m.Name, m.Phone, m.EmailName, m.EmailDomain, m.Grade, string(m.Provider),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("member id already taken", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to register member", err)
	}
	return nil
}

// RegisterSNS stores an OAuth account keyed by the provider-issued id. The
// pwd column stays NULL.
func (r *MemberRepository) RegisterSNS(ctx context.Context, m *member.Member) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO members (id, name, phone, email_name, email_domain, grade, provider)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		m.ID, m.Name, m.Phone, m.EmailName, m.EmailDomain, m.Grade, string(m.Provider),
	)
	if err != nil {
		if isDuplicateKey(err) {
			return infra.WrapRepoErr("member already registered", err, infra.KindDuplicateKey)
		}
		return infra.WrapRepoErr("failed to register sns member", err)
	}
	return nil
}

func (r *MemberRepository) FindByID(ctx context.Context, id string) (*member.Member, error) {
	var m member.Member
	var provider string
	err := r.db.QueryRow(ctx, `
		SELECT id, name, COALESCE(phone, ''), email_name, email_domain, grade, provider, created_at
		FROM members WHERE id = $1`, id,
	).Scan(&m.ID, &m.Name, &m.Phone, &m.EmailName, &m.EmailDomain, &m.Grade, &provider, &m.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find member", err)
	}
	m.Provider = member.Provider(provider)
	return &m, nil
}

// FindCredentials returns the stored bcrypt hash for a local login attempt.
func (r *MemberRepository) FindCredentials(ctx context.Context, id string) (hashedPwd string, err error) {
	err = r.db.QueryRow(ctx,
		`SELECT pwd FROM members WHERE id = $1 AND provider = 'local'`, id,
	).Scan(&hashedPwd)
	if err != nil {
		if err == pgx.ErrNoRows {
			return "", infra.WrapRepoErr("member not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load credentials", err)
	}
	return hashedPwd, nil
}

// Exists reports whether an id is already registered, used by the
// availability check during signup and by OAuth sign-in.
func (r *MemberRepository) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM members WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check member id", err)
	}
	return exists, nil
}
