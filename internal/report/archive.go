package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"graph-forest/internal/sims/wildfire"
)

// ErrRunNotFound is returned when a run id has no archived record.
var ErrRunNotFound = errors.New("report: run not found")

// Run is the archived summary of one finished run.
type Run struct {
	ID             int64   `db:"id"`
	FinishedAt     string  `db:"finished_at"`
	Seed           int64   `db:"seed"`
	Nodes          int     `db:"nodes"`
	Agents         int     `db:"agents"`
	Ticks          int     `db:"ticks"`
	ForestFraction float64 `db:"forest_fraction"`
	SkillMean      float64 `db:"skill_mean"`
	Combustion     float64 `db:"combustion"`
	Transmission   float64 `db:"transmission"`
	Respawn        float64 `db:"respawn"`
	FinalBurning   int     `db:"final_burning"`
	FinalForest    int     `db:"final_forest"`
	FinalRock      int     `db:"final_rock"`
}

// NewRun summarises a finished world.
func NewRun(w *wildfire.World) Run {
	cfg := w.Config()
	h := w.History()
	last, _ := h.Last()
	return Run{
		FinishedAt:     time.Now().UTC().Format(time.RFC3339),
		Seed:           w.Seed(),
		Nodes:          w.Graph().Len(),
		Agents:         w.Roster().Len(),
		Ticks:          h.Len(),
		ForestFraction: cfg.ForestFraction,
		SkillMean:      cfg.SkillMean,
		Combustion:     cfg.Params.Combustion,
		Transmission:   cfg.Params.Transmission,
		Respawn:        cfg.Params.Respawn,
		FinalBurning:   last.Burning,
		FinalForest:    last.Forest,
		FinalRock:      last.Rock,
	}
}

// Archive stores run summaries and their histories in SQLite. Archived runs
// are reports only; nothing is ever loaded back into a World.
type Archive struct {
	conn *sqlx.DB
}

// OpenArchive opens or creates an archive at path.
func OpenArchive(path string) (*Archive, error) {
	conn, err := sqlx.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}
	a := &Archive{conn: conn}
	if err := a.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	return a, nil
}

// Close closes the database connection.
func (a *Archive) Close() error {
	return a.conn.Close()
}

func (a *Archive) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		finished_at TEXT NOT NULL,
		seed INTEGER NOT NULL,
		nodes INTEGER NOT NULL,
		agents INTEGER NOT NULL,
		ticks INTEGER NOT NULL,
		forest_fraction REAL NOT NULL,
		skill_mean REAL NOT NULL,
		combustion REAL NOT NULL,
		transmission REAL NOT NULL,
		respawn REAL NOT NULL,
		final_burning INTEGER NOT NULL,
		final_forest INTEGER NOT NULL,
		final_rock INTEGER NOT NULL
	);

	CREATE TABLE IF NOT EXISTS history (
		run_id INTEGER NOT NULL REFERENCES runs(id),
		tick INTEGER NOT NULL,
		burning INTEGER NOT NULL,
		forest INTEGER NOT NULL,
		rock INTEGER NOT NULL,
		PRIMARY KEY (run_id, tick)
	);
	`
	_, err := a.conn.Exec(schema)
	return err
}

// Save archives a run and its history, returning the new run id.
func (a *Archive) Save(ctx context.Context, run Run, h wildfire.History) (int64, error) {
	tx, err := a.conn.BeginTxx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback()

	res, err := tx.NamedExecContext(ctx, `INSERT INTO runs (
		finished_at, seed, nodes, agents, ticks, forest_fraction, skill_mean,
		combustion, transmission, respawn, final_burning, final_forest, final_rock
	) VALUES (
		:finished_at, :seed, :nodes, :agents, :ticks, :forest_fraction, :skill_mean,
		:combustion, :transmission, :respawn, :final_burning, :final_forest, :final_rock
	)`, run)
	if err != nil {
		return 0, fmt.Errorf("insert run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	stmt, err := tx.PreparexContext(ctx, "INSERT INTO history (run_id, tick, burning, forest, rock) VALUES (?, ?, ?, ?, ?)")
	if err != nil {
		return 0, err
	}
	defer stmt.Close()
	for i := 0; i < h.Len(); i++ {
		c := h.At(i)
		if _, err := stmt.ExecContext(ctx, id, i+1, c.Burning, c.Forest, c.Rock); err != nil {
			return 0, fmt.Errorf("insert history tick %d: %w", i+1, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return id, nil
}

// Runs lists archived runs, newest first.
func (a *Archive) Runs(ctx context.Context) ([]Run, error) {
	var runs []Run
	if err := a.conn.SelectContext(ctx, &runs, "SELECT * FROM runs ORDER BY id DESC"); err != nil {
		return nil, err
	}
	return runs, nil
}

// History loads the population history of an archived run.
func (a *Archive) History(ctx context.Context, runID int64) (wildfire.History, error) {
	var exists int
	if err := a.conn.GetContext(ctx, &exists, "SELECT COUNT(*) FROM runs WHERE id = ?", runID); err != nil {
		return wildfire.History{}, err
	}
	if exists == 0 {
		return wildfire.History{}, fmt.Errorf("%w: %d", ErrRunNotFound, runID)
	}

	var rows []struct {
		Burning int `db:"burning"`
		Forest  int `db:"forest"`
		Rock    int `db:"rock"`
	}
	if err := a.conn.SelectContext(ctx, &rows, "SELECT burning, forest, rock FROM history WHERE run_id = ? ORDER BY tick", runID); err != nil {
		return wildfire.History{}, err
	}
	var h wildfire.History
	for _, r := range rows {
		h.Burning = append(h.Burning, r.Burning)
		h.Forest = append(h.Forest, r.Forest)
		h.Rock = append(h.Rock, r.Rock)
	}
	return h, nil
}
