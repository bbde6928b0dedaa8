package repository

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/rishi-ann/redlix-portal/internal/database"
	"github.com/rishi-ann/redlix-portal/internal/model"
)

// ClientRepository returns raw driver errors; callers classify them with
// IsUniqueViolation and IsForeignKeyViolation.
type ClientRepository interface {
	Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error)
	FindByID(ctx context.Context, id string) (*model.Client, error)
	FindWithDevelopers(ctx context.Context, id string) (*model.ClientWithDevelopers, error)
	Exists(ctx context.Context, id string) (bool, error)
	List(ctx context.Context) ([]*model.ClientWithDevelopers, error)
	ListByDeveloper(ctx context.Context, developerID string) ([]*model.Client, error)
	IsAssigned(ctx context.Context, clientID, developerID string) (bool, error)
	Update(ctx context.Context, id string, params model.UpdateClientParams) (*model.Client, error)
	Delete(ctx context.Context, id string) (bool, error)
	DevelopersFor(ctx context.Context, clientIDs []string) (map[string][]model.DeveloperRef, error)
}

type clientRepo struct {
	db *sqlx.DB
}

func NewClientRepository(db *sqlx.DB) ClientRepository {
	return &clientRepo{db: db}
}

func (r *clientRepo) Create(ctx context.Context, params model.CreateClientParams) (*model.Client, error) {
	var client model.Client
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		if err := tx.GetContext(ctx, &client, `
			INSERT INTO clients (id, name, contact_name, email, mobile, total_budget, amount_paid, start_date, end_date)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
			RETURNING *
		`, params.ID, params.Name, params.ContactName, params.Email, params.Mobile,
			params.TotalBudget, params.AmountPaid, params.StartDate, params.EndDate); err != nil {
			return err
		}
		return linkDevelopers(ctx, tx, client.ID, params.DeveloperIDs)
	})
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepo) FindByID(ctx context.Context, id string) (*model.Client, error) {
	var client model.Client
	err := r.db.GetContext(ctx, &client, `SELECT * FROM clients WHERE id = $1`, id)
	return HandleNotFound(&client, err)
}

func (r *clientRepo) FindWithDevelopers(ctx context.Context, id string) (*model.ClientWithDevelopers, error) {
	client, err := r.FindByID(ctx, id)
	if err != nil || client == nil {
		return nil, err
	}

	devs, err := r.DevelopersFor(ctx, []string{client.ID})
	if err != nil {
		return nil, err
	}
	return &model.ClientWithDevelopers{Client: *client, Developers: nonNilRefs(devs[client.ID])}, nil
}

func (r *clientRepo) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, `SELECT EXISTS(SELECT 1 FROM clients WHERE id = $1)`, id)
	return exists, err
}

func (r *clientRepo) List(ctx context.Context) ([]*model.ClientWithDevelopers, error) {
	var clients []*model.Client
	if err := r.db.SelectContext(ctx, &clients, `SELECT * FROM clients ORDER BY created_at DESC`); err != nil {
		return nil, err
	}

	ids := make([]string, len(clients))
	for i, c := range clients {
		ids[i] = c.ID
	}
	devs, err := r.DevelopersFor(ctx, ids)
	if err != nil {
		return nil, err
	}

	result := make([]*model.ClientWithDevelopers, len(clients))
	for i, c := range clients {
		result[i] = &model.ClientWithDevelopers{Client: *c, Developers: nonNilRefs(devs[c.ID])}
	}
	return result, nil
}

func (r *clientRepo) ListByDeveloper(ctx context.Context, developerID string) ([]*model.Client, error) {
	clients := []*model.Client{}
	err := r.db.SelectContext(ctx, &clients, `
		SELECT c.* FROM clients c
		JOIN client_developers cd ON cd.client_id = c.id
		WHERE cd.developer_id = $1
		ORDER BY c.created_at DESC
	`, developerID)
	if err != nil {
		return nil, err
	}
	return clients, nil
}

func (r *clientRepo) IsAssigned(ctx context.Context, clientID, developerID string) (bool, error) {
	var assigned bool
	err := r.db.GetContext(ctx, &assigned, `
		SELECT EXISTS(SELECT 1 FROM client_developers WHERE client_id = $1 AND developer_id = $2)
	`, clientID, developerID)
	return assigned, err
}

// Update applies params in one transaction. A NewID renames the primary key
// and the foreign keys follow through ON UPDATE CASCADE. Returns nil when no
// client has the given id.
func (r *clientRepo) Update(ctx context.Context, id string, params model.UpdateClientParams) (*model.Client, error) {
	var client *model.Client
	err := database.WithTx(ctx, r.db, func(tx *sqlx.Tx) error {
		var updated model.Client
		err := tx.GetContext(ctx, &updated, `
			UPDATE clients SET
				id = COALESCE($2, id),
				name = COALESCE($3, name),
				contact_name = COALESCE($4, contact_name),
				email = COALESCE($5, email),
				mobile = COALESCE($6, mobile),
				total_budget = COALESCE($7, total_budget),
				amount_paid = COALESCE($8, amount_paid),
				start_date = COALESCE($9, start_date),
				end_date = COALESCE($10, end_date),
				updated_at = NOW()
			WHERE id = $1
			RETURNING *
		`, id, params.NewID, params.Name, params.ContactName, params.Email, params.Mobile,
			params.TotalBudget, params.AmountPaid, params.StartDate, params.EndDate)
		found, err := HandleNotFound(&updated, err)
		if err != nil || found == nil {
			return err
		}
		client = found

		if params.DeveloperIDs == nil {
			return nil
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM client_developers WHERE client_id = $1`, client.ID); err != nil {
			return err
		}
		return linkDevelopers(ctx, tx, client.ID, params.DeveloperIDs)
	})
	if err != nil {
		return nil, err
	}
	return client, nil
}

func (r *clientRepo) Delete(ctx context.Context, id string) (bool, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	n, err := result.RowsAffected()
	return n > 0, err
}

func (r *clientRepo) DevelopersFor(ctx context.Context, clientIDs []string) (map[string][]model.DeveloperRef, error) {
	result := make(map[string][]model.DeveloperRef, len(clientIDs))
	if len(clientIDs) == 0 {
		return result, nil
	}

	var rows []struct {
		ClientID string `db:"client_id"`
		model.DeveloperRef
	}
	err := r.db.SelectContext(ctx, &rows, `
		SELECT cd.client_id, d.id, d.email
		FROM client_developers cd
		JOIN developers d ON d.id = cd.developer_id
		WHERE cd.client_id = ANY($1)
		ORDER BY d.email
	`, pq.Array(clientIDs))
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		result[row.ClientID] = append(result[row.ClientID], row.DeveloperRef)
	}
	return result, nil
}

func linkDevelopers(ctx context.Context, tx *sqlx.Tx, clientID string, developerIDs []string) error {
	if len(developerIDs) == 0 {
		return nil
	}
	_, err := tx.ExecContext(ctx, `
		INSERT INTO client_developers (client_id, developer_id)
		SELECT $1, unnest($2::text[])
		ON CONFLICT DO NOTHING
	`, clientID, pq.Array(developerIDs))
	return err
}

func nonNilRefs(refs []model.DeveloperRef) []model.DeveloperRef {
	if refs == nil {
		return []model.DeveloperRef{}
	}
	return refs
}
