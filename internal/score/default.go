package score

import (
	"crypto/sha256"
	"database/sql"
	"encoding/base64"
	"fmt"
	"log"

	"git.lost.host/meutraa/notefall/internal/game"
	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

type DefaultScorer struct {
	// Database file path, ":memory:" works for tests.
	Path string

	db *sql.DB
}

func (s *DefaultScorer) Init() error {
	db, err := sql.Open("sqlite3", s.Path)
	if nil != err {
		return fmt.Errorf("unable to open score database: %w", err)
	}
	if err := db.Ping(); nil != err {
		return fmt.Errorf("unable to ping score database: %w", err)
	}

	initStatement := `
	create table if not exists highscores
	  (
		  sum text not null primary key,
		  score integer not null
	  );
	create table if not exists sessions
	  (
		  id text not null primary key,
		  sum text not null,
		  score integer not null,
		  multiplier real not null,
		  ended_at timestamp default current_timestamp
	  );
	`
	if _, err := db.Exec(initStatement); nil != err {
		return fmt.Errorf("unable to create score tables: %w", err)
	}

	s.db = db
	return nil
}

func (s *DefaultScorer) Deinit() {
	if nil != s.db {
		s.db.Close()
	}
}

// hashChart identifies a chart by its note content, so renaming or moving
// the file keeps its scores.
func (s *DefaultScorer) hashChart(c *game.Chart) string {
	h := sha256.New()
	for _, n := range c.Notes {
		fmt.Fprintf(h, "%v|%v|%v|%v|%v\n", n.UserPlayed, n.Pitch, n.Start, n.End, n.Instrument)
	}
	return base64.StdEncoding.EncodeToString(h.Sum(nil))
}

func (s *DefaultScorer) LoadHighScore(c *game.Chart) int {
	var score int
	err := s.db.QueryRow("select score from highscores where sum = ?", s.hashChart(c)).Scan(&score)
	if err == sql.ErrNoRows {
		return 0
	}
	if nil != err {
		log.Println("unable to load high score:", err)
		return 0
	}
	return score
}

func (s *DefaultScorer) SaveHighScore(c *game.Chart, score int) {
	_, err := s.db.Exec(
		"insert into highscores(sum, score) values(?, ?) on conflict(sum) do update set score = excluded.score",
		s.hashChart(c), score)
	if nil != err {
		log.Println("unable to save high score:", err)
	}
}

func (s *DefaultScorer) SaveSession(c *game.Chart, id uuid.UUID, final game.State) {
	_, err := s.db.Exec(
		"insert into sessions(id, sum, score, multiplier) values(?, ?, ?, ?)",
		id.String(), s.hashChart(c), final.Score, final.Multiplier)
	if nil != err {
		log.Println("unable to save session:", err)
	}
}
