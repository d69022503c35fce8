// Package persistence stores and loads the two prediction tables: a
// SQLite mirror (sqlx over modernc.org/sqlite, cgo-free) plus JSON
// import/export in the upstream row format. The prediction packages stay
// I/O-free; this is the loading collaborator made concrete.
package persistence

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/katalvlaran/qats/dataset"
)

// ErrSchema indicates rows that cannot be decoded or fail the dataset
// invariants on load.
var ErrSchema = errors.New("persistence: stored rows violate the dataset schema")

// Store wraps a SQLite connection holding the two tables.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path and migrates
// the schema. File databases run in WAL mode with a busy timeout.
func Open(path string) (*Store, error) {
	return open(path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
}

// OpenMemory opens a fresh in-memory database, useful for tests and
// one-shot pipelines.
func OpenMemory() (*Store, error) {
	return open(":memory:")
}

func open(dsn string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()

		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS qc_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		system TEXT NOT NULL,
		atomic_numbers TEXT NOT NULL,
		charge INTEGER NOT NULL,
		multiplicity INTEGER NOT NULL,
		n_electrons INTEGER NOT NULL,
		basis_set TEXT NOT NULL,
		lambda_value INTEGER NOT NULL,
		bond_length REAL NOT NULL,
		electronic_energy REAL NOT NULL
	);

	CREATE TABLE IF NOT EXISTS qats_rows (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		system TEXT NOT NULL,
		atomic_numbers TEXT NOT NULL,
		charge INTEGER NOT NULL,
		multiplicity INTEGER NOT NULL,
		n_electrons INTEGER NOT NULL,
		basis_set TEXT NOT NULL,
		bond_length REAL NOT NULL,
		poly_coeffs TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_qc_system ON qc_rows(system, basis_set);
	CREATE INDEX IF NOT EXISTS idx_qc_electrons ON qc_rows(n_electrons, basis_set);
	CREATE INDEX IF NOT EXISTS idx_qats_system ON qats_rows(system, basis_set);
	CREATE INDEX IF NOT EXISTS idx_qats_electrons ON qats_rows(n_electrons, basis_set);
	`
	_, err := s.conn.Exec(schema)

	return err
}

// qcRecord is the storage shape of a QC row; the integer slice travels as
// a JSON TEXT column.
type qcRecord struct {
	System           string  `db:"system"`
	AtomicNumbers    string  `db:"atomic_numbers"`
	Charge           int     `db:"charge"`
	Multiplicity     int     `db:"multiplicity"`
	NElectrons       int     `db:"n_electrons"`
	BasisSet         string  `db:"basis_set"`
	LambdaValue      int     `db:"lambda_value"`
	BondLength       float64 `db:"bond_length"`
	ElectronicEnergy float64 `db:"electronic_energy"`
}

// qatsRecord is the storage shape of a QATS row; both slices travel as
// JSON TEXT columns.
type qatsRecord struct {
	System        string  `db:"system"`
	AtomicNumbers string  `db:"atomic_numbers"`
	Charge        int     `db:"charge"`
	Multiplicity  int     `db:"multiplicity"`
	NElectrons    int     `db:"n_electrons"`
	BasisSet      string  `db:"basis_set"`
	BondLength    float64 `db:"bond_length"`
	PolyCoeffs    string  `db:"poly_coeffs"`
}

// SaveQC replaces the stored quantum-chemistry table, transactionally.
func (s *Store) SaveQC(t dataset.QCTable) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM qc_rows"); err != nil {
		return err
	}
	const insert = `INSERT INTO qc_rows
		(system, atomic_numbers, charge, multiplicity, n_electrons, basis_set, lambda_value, bond_length, electronic_energy)
		VALUES (:system, :atomic_numbers, :charge, :multiplicity, :n_electrons, :basis_set, :lambda_value, :bond_length, :electronic_energy)`
	for _, r := range t {
		zs, err := json.Marshal(r.AtomicNumbers)
		if err != nil {
			return err
		}
		rec := qcRecord{
			System:           r.System,
			AtomicNumbers:    string(zs),
			Charge:           r.Charge,
			Multiplicity:     r.Multiplicity,
			NElectrons:       r.NElectrons,
			BasisSet:         r.BasisSet,
			LambdaValue:      r.LambdaValue,
			BondLength:       r.BondLength,
			ElectronicEnergy: r.ElectronicEnergy,
		}
		if _, err = tx.NamedExec(insert, rec); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// SaveQATS replaces the stored expansion table, transactionally.
func (s *Store) SaveQATS(t dataset.QATSTable) error {
	tx, err := s.conn.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err = tx.Exec("DELETE FROM qats_rows"); err != nil {
		return err
	}
	const insert = `INSERT INTO qats_rows
		(system, atomic_numbers, charge, multiplicity, n_electrons, basis_set, bond_length, poly_coeffs)
		VALUES (:system, :atomic_numbers, :charge, :multiplicity, :n_electrons, :basis_set, :bond_length, :poly_coeffs)`
	for _, r := range t {
		zs, err := json.Marshal(r.AtomicNumbers)
		if err != nil {
			return err
		}
		cs, err := json.Marshal(r.PolyCoeffs)
		if err != nil {
			return err
		}
		rec := qatsRecord{
			System:        r.System,
			AtomicNumbers: string(zs),
			Charge:        r.Charge,
			Multiplicity:  r.Multiplicity,
			NElectrons:    r.NElectrons,
			BasisSet:      r.BasisSet,
			BondLength:    r.BondLength,
			PolyCoeffs:    string(cs),
		}
		if _, err = tx.NamedExec(insert, rec); err != nil {
			return err
		}
	}

	return tx.Commit()
}

// LoadQC reads the stored quantum-chemistry table in insertion order and
// validates it against the dataset invariants.
func (s *Store) LoadQC() (dataset.QCTable, error) {
	var recs []qcRecord
	if err := s.conn.Select(&recs, "SELECT system, atomic_numbers, charge, multiplicity, n_electrons, basis_set, lambda_value, bond_length, electronic_energy FROM qc_rows ORDER BY id"); err != nil {
		return nil, err
	}

	out := make(dataset.QCTable, 0, len(recs))
	for _, rec := range recs {
		var zs []int
		if err := json.Unmarshal([]byte(rec.AtomicNumbers), &zs); err != nil {
			return nil, fmt.Errorf("%w: atomic_numbers of %q: %w", ErrSchema, rec.System, err)
		}
		out = append(out, dataset.QCRow{
			System:           rec.System,
			AtomicNumbers:    zs,
			Charge:           rec.Charge,
			Multiplicity:     rec.Multiplicity,
			NElectrons:       rec.NElectrons,
			BasisSet:         rec.BasisSet,
			LambdaValue:      rec.LambdaValue,
			BondLength:       rec.BondLength,
			ElectronicEnergy: rec.ElectronicEnergy,
		})
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return out, nil
}

// LoadQATS reads the stored expansion table in insertion order and
// validates it against the dataset invariants.
func (s *Store) LoadQATS() (dataset.QATSTable, error) {
	var recs []qatsRecord
	if err := s.conn.Select(&recs, "SELECT system, atomic_numbers, charge, multiplicity, n_electrons, basis_set, bond_length, poly_coeffs FROM qats_rows ORDER BY id"); err != nil {
		return nil, err
	}

	out := make(dataset.QATSTable, 0, len(recs))
	for _, rec := range recs {
		var zs []int
		if err := json.Unmarshal([]byte(rec.AtomicNumbers), &zs); err != nil {
			return nil, fmt.Errorf("%w: atomic_numbers of %q: %w", ErrSchema, rec.System, err)
		}
		var cs []float64
		if err := json.Unmarshal([]byte(rec.PolyCoeffs), &cs); err != nil {
			return nil, fmt.Errorf("%w: poly_coeffs of %q: %w", ErrSchema, rec.System, err)
		}
		out = append(out, dataset.QATSRow{
			System:        rec.System,
			AtomicNumbers: zs,
			Charge:        rec.Charge,
			Multiplicity:  rec.Multiplicity,
			NElectrons:    rec.NElectrons,
			BasisSet:      rec.BasisSet,
			BondLength:    rec.BondLength,
			PolyCoeffs:    cs,
		})
	}
	if err := out.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}

	return out, nil
}
