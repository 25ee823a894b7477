package store

// runMigrations executes all database migrations.
func (s *Store) runMigrations() error {
	migrations := []string{
		// Profiles table - stores mapping profile definitions
		`CREATE TABLE IF NOT EXISTS profiles (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			description TEXT NOT NULL DEFAULT '',
			is_active INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)`,

		// Profile mappings table - stores gesture-to-control bindings
		`CREATE TABLE IF NOT EXISTS profile_mappings (
			id TEXT NOT NULL,
			profile_id TEXT NOT NULL REFERENCES profiles(id) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			name TEXT NOT NULL,
			description TEXT NOT NULL DEFAULT '',
			target_stem TEXT NOT NULL,
			control_type TEXT NOT NULL,
			hand TEXT NOT NULL DEFAULT 'any',
			gesture_type TEXT NOT NULL,
			params TEXT NOT NULL DEFAULT '{}',
			PRIMARY KEY (profile_id, id)
		)`,

		// Indexes for better query performance
		`CREATE INDEX IF NOT EXISTS idx_profile_mappings_profile_id ON profile_mappings(profile_id)`,
	}

	for _, migration := range migrations {
		if _, err := s.db.Exec(migration); err != nil {
			return err
		}
	}

	return nil
}
