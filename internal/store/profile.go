package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"time"
)

// ErrNotFound is returned when a requested resource does not exist.
var ErrNotFound = errors.New("not found")

// Profile represents a mapping profile stored in the database.
type Profile struct {
	ID          string
	Name        string
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Mapping represents one gesture-to-control binding stored for a profile.
// Position preserves the binding order within the profile.
type Mapping struct {
	ID          string
	ProfileID   string
	Position    int
	Name        string
	Description string
	TargetStem  string
	ControlType string
	Hand        string
	GestureType string
	Params      map[string]string
}

// ProfileRepository provides CRUD operations for profiles and their
// mappings.
type ProfileRepository struct {
	db *sql.DB
}

// Profiles returns the profile repository for this store.
func (s *Store) Profiles() *ProfileRepository {
	return &ProfileRepository{db: s.db}
}

// Create inserts a new profile into the database.
func (r *ProfileRepository) Create(p *Profile) error {
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	_, err := r.db.Exec(
		`INSERT INTO profiles (id, name, description, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.Description, boolToInt(p.IsActive), p.CreatedAt, p.UpdatedAt,
	)
	return err
}

// GetByID retrieves a profile by its ID.
func (r *ProfileRepository) GetByID(id string) (*Profile, error) {
	p := &Profile{}
	var isActive int

	err := r.db.QueryRow(
		`SELECT id, name, description, is_active, created_at, updated_at
		 FROM profiles WHERE id = ?`,
		id,
	).Scan(&p.ID, &p.Name, &p.Description, &isActive, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	p.IsActive = isActive != 0
	return p, nil
}

// List retrieves all profiles from the database.
func (r *ProfileRepository) List() ([]*Profile, error) {
	rows, err := r.db.Query(
		`SELECT id, name, description, is_active, created_at, updated_at
		 FROM profiles ORDER BY created_at`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var profiles []*Profile
	for rows.Next() {
		p := &Profile{}
		var isActive int

		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &isActive, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}

		p.IsActive = isActive != 0
		profiles = append(profiles, p)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return profiles, nil
}

// Update updates an existing profile in the database.
func (r *ProfileRepository) Update(p *Profile) error {
	p.UpdatedAt = time.Now()

	result, err := r.db.Exec(
		`UPDATE profiles SET name = ?, description = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.Description, boolToInt(p.IsActive), p.UpdatedAt, p.ID,
	)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// Delete removes a profile and its mappings from the database by its ID.
func (r *ProfileRepository) Delete(id string) error {
	result, err := r.db.Exec(`DELETE FROM profiles WHERE id = ?`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// SetActive marks one profile active and clears the flag on all others.
func (r *ProfileRepository) SetActive(id string) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	if _, err := r.db.Exec(`UPDATE profiles SET is_active = 0 WHERE id != ?`, id); err != nil {
		return err
	}
	_, err := r.db.Exec(`UPDATE profiles SET is_active = 1, updated_at = ? WHERE id = ?`, time.Now(), id)
	return err
}

// ReplaceMappings replaces all mappings stored for a profile.
func (r *ProfileRepository) ReplaceMappings(profileID string, mappings []Mapping) error {
	tx, err := r.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM profile_mappings WHERE profile_id = ?`, profileID); err != nil {
		return err
	}

	for i, m := range mappings {
		params := m.Params
		if params == nil {
			params = map[string]string{}
		}
		encoded, err := json.Marshal(params)
		if err != nil {
			return err
		}

		_, err = tx.Exec(
			`INSERT INTO profile_mappings
			 (id, profile_id, position, name, description, target_stem, control_type, hand, gesture_type, params)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			m.ID, profileID, i, m.Name, m.Description, m.TargetStem, m.ControlType, m.Hand, m.GestureType, string(encoded),
		)
		if err != nil {
			return err
		}
	}

	return tx.Commit()
}

// Mappings retrieves all mappings for a profile in stored order.
func (r *ProfileRepository) Mappings(profileID string) ([]Mapping, error) {
	rows, err := r.db.Query(
		`SELECT id, profile_id, position, name, description, target_stem, control_type, hand, gesture_type, params
		 FROM profile_mappings WHERE profile_id = ? ORDER BY position`,
		profileID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var mappings []Mapping
	for rows.Next() {
		var m Mapping
		var params string

		err := rows.Scan(&m.ID, &m.ProfileID, &m.Position, &m.Name, &m.Description,
			&m.TargetStem, &m.ControlType, &m.Hand, &m.GestureType, &params)
		if err != nil {
			return nil, err
		}

		if err := json.Unmarshal([]byte(params), &m.Params); err != nil {
			return nil, err
		}
		mappings = append(mappings, m)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return mappings, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
