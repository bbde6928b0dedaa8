package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/rishi-ann/redlix-portal/internal/database"
	"github.com/rishi-ann/redlix-portal/internal/model"
)

type DeveloperRepository interface {
	// Upsert creates the developer or refreshes its email.
	Upsert(ctx context.Context, id, email string) (*model.Developer, error)
	FindByID(ctx context.Context, id string) (*model.Developer, error)
	FindByEmail(ctx context.Context, email string) (*model.Developer, error)
	// FindByIdentity resolves a federated login to the developer it is linked to.
	FindByIdentity(ctx context.Context, provider, subject string) (*model.Developer, error)
	LinkIdentity(ctx context.Context, developerID, provider, subject string) error
	List(ctx context.Context) ([]*model.Developer, error)
	Profile(ctx context.Context, id string) (*model.DeveloperProfile, error)
}

type developerRepo struct {
	db *sqlx.DB
}

func NewDeveloperRepository(db *sqlx.DB) DeveloperRepository {
	return &developerRepo{db: db}
}

func (r *developerRepo) Upsert(ctx context.Context, id, email string) (*model.Developer, error) {
	var dev model.Developer
	err := r.db.GetContext(ctx, &dev, upsertDeveloperSQL, id, email)
	if err != nil {
		return nil, err
	}
	return &dev, nil
}

const upsertDeveloperSQL = `
	INSERT INTO developers (id, email)
	VALUES ($1, $2)
	ON CONFLICT (id) DO UPDATE SET email = EXCLUDED.email, updated_at = NOW()
	RETURNING *
`

func (r *developerRepo) FindByID(ctx context.Context, id string) (*model.Developer, error) {
	var dev model.Developer
	err := r.db.GetContext(ctx, &dev, `SELECT * FROM developers WHERE id = $1`, id)
	return HandleNotFound(&dev, err)
}

func (r *developerRepo) FindByEmail(ctx context.Context, email string) (*model.Developer, error) {
	var dev model.Developer
	err := r.db.GetContext(ctx, &dev, `SELECT * FROM developers WHERE email = $1`, email)
	return HandleNotFound(&dev, err)
}

func (r *developerRepo) FindByIdentity(ctx context.Context, provider, subject string) (*model.Developer, error) {
	var dev model.Developer
	err := r.db.GetContext(ctx, &dev, `
		SELECT d.* FROM developers d
		JOIN developer_identities i ON i.developer_id = d.id
		WHERE i.provider = $1 AND i.subject = $2
	`, provider, subject)
	return HandleNotFound(&dev, err)
}

func (r *developerRepo) LinkIdentity(ctx context.Context, developerID, provider, subject string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO developer_identities (provider, subject, developer_id)
		VALUES ($1, $2, $3)
		ON CONFLICT (provider, subject) DO NOTHING
	`, provider, subject, developerID)
	return err
}

func (r *developerRepo) List(ctx context.Context) ([]*model.Developer, error) {
	devs := []*model.Developer{}
	if err := r.db.SelectContext(ctx, &devs, `SELECT * FROM developers ORDER BY email`); err != nil {
		return nil, err
	}
	return devs, nil
}

func (r *developerRepo) Profile(ctx context.Context, id string) (*model.DeveloperProfile, error) {
	var row struct {
		model.Developer
		Clients int `db:"clients_count"`
		Tasks   int `db:"tasks_count"`
		Reports int `db:"reports_count"`
	}
	err := r.db.GetContext(ctx, &row, `
		SELECT d.*,
			(SELECT COUNT(*) FROM client_developers WHERE developer_id = d.id) AS clients_count,
			(SELECT COUNT(*) FROM tasks WHERE developer_id = d.id) AS tasks_count,
			(SELECT COUNT(*) FROM project_reports WHERE developer_id = d.id) AS reports_count
		FROM developers d
		WHERE d.id = $1
	`, id)
	found, err := HandleNotFound(&row, err)
	if err != nil || found == nil {
		return nil, err
	}

	return &model.DeveloperProfile{
		Developer: row.Developer,
		Counts: model.DeveloperCounts{
			Clients: row.Clients,
			Tasks:   row.Tasks,
			Reports: row.Reports,
		},
	}, nil
}

// CredentialRepository stores email/password logins for developers.
type CredentialRepository interface {
	// Register creates the developer row and its credential together.
	Register(ctx context.Context, developerID, email, passwordHash string) (*model.DeveloperCredential, error)
	FindByEmail(ctx context.Context, email string) (*model.DeveloperCredential, error)
}

type credentialRepo struct {
	db *sqlx.DB
}

func NewCredentialRepository(db *sqlx.DB) CredentialRepository {
	return &credentialRepo{db: db}
}

func (r *credentialRepo) Register(ctx context.Context, developerID, email, passwordHash string) (*model.DeveloperCredential, error) {
	var cred model.DeveloperCredential
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var dev model.Developer
		if err := tx.GetContext(ctx, &dev, upsertDeveloperSQL, developerID, email); err != nil {
			return err
		}
		return tx.GetContext(ctx, &cred, `
			INSERT INTO developer_credentials (developer_id, email, password_hash)
			VALUES ($1, $2, $3)
			RETURNING *
		`, developerID, email, passwordHash)
	})
	if err != nil {
		return nil, err
	}
	return &cred, nil
}

func (r *credentialRepo) FindByEmail(ctx context.Context, email string) (*model.DeveloperCredential, error) {
	var cred model.DeveloperCredential
	err := r.db.GetContext(ctx, &cred, `SELECT * FROM developer_credentials WHERE email = $1`, email)
	return HandleNotFound(&cred, err)
}
