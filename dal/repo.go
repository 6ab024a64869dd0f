package dal

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"sync"
	"time"
	"toot_scheduler/shared"
)

//go:generate mockgen --build_flags=--mod=mod -destination ../test/mocks/mock_repo.go -package mocks toot_scheduler/dal IRepo

//go:embed scripts/*.sql
var scripts embed.FS

type IRepo interface {
	InitUpdateDb()
	GetSlot(name string) (val string, found bool, err error)
	SetSlot(name, val string) error
	DeleteSlot(name string) error
	AddTootLogEntry(entry *TootLogEntry) error
	GetTootLog(instance string, limit int) ([]*TootLogEntry, error)
}

type Repo struct {
	cfg    *shared.Config
	logger shared.ILogger
	db     *sqlx.DB
	muDb   sync.RWMutex
}

func NewRepo(cfg *shared.Config, logger shared.ILogger) IRepo {

	var err error
	var db *sqlx.DB

	// https://phiresky.github.io/blog/2020/sqlite-performance-tuning/
	// _synchronous=1 is "normal"
	cstr := "file:%s?cache=shared&mode=rwc&_journal_mode=WAL&_synchronous=1&_busy_timeout=5000"
	db, err = sqlx.Open("sqlite3", fmt.Sprintf(cstr, cfg.DbFile))
	if err != nil {
		logger.Errorf("Failed to open/create DB file: %s: %v", cfg.DbFile, err)
		panic(err)
	}

	repo := Repo{
		cfg:    cfg,
		logger: logger,
		db:     db,
	}

	return &repo
}

func (repo *Repo) InitUpdateDb() {

	src, err := iofs.New(scripts, "scripts")
	if err != nil {
		repo.logger.Errorf("Failed to open embedded migration scripts: %v", err)
		panic(err)
	}
	driver, err := sqlite3.WithInstance(repo.db.DB, &sqlite3.Config{})
	if err != nil {
		repo.logger.Errorf("Failed to create migration driver: %v", err)
		panic(err)
	}
	m, err := migrate.NewWithInstance("iofs", src, "sqlite3", driver)
	if err != nil {
		repo.logger.Errorf("Failed to initialize migrations: %v", err)
		panic(err)
	}

	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		repo.logger.Errorf("Failed to apply migrations: %v", err)
		panic(err)
	}
	ver, _, _ := m.Version()
	if errors.Is(err, migrate.ErrNoChange) {
		repo.logger.Printf("Database schema is up to date at version %d", ver)
	} else {
		repo.logger.Printf("Database migrated to schema version %d", ver)
	}
	// Closing the driver would close the shared connection
	_ = src.Close()
}

func (repo *Repo) GetSlot(name string) (val string, found bool, err error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	err = repo.db.Get(&val, `SELECT val FROM slots WHERE name=?`, name)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return val, true, nil
}

func (repo *Repo) SetSlot(name, val string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`INSERT INTO slots (name, val, updated_at) VALUES(?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET val=excluded.val, updated_at=excluded.updated_at`,
		name, val, time.Now().UTC())
	return err
}

func (repo *Repo) DeleteSlot(name string) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	_, err := repo.db.Exec(`DELETE FROM slots WHERE name=?`, name)
	return err
}

func (repo *Repo) AddTootLogEntry(entry *TootLogEntry) error {

	repo.muDb.Lock()
	defer repo.muDb.Unlock()

	if entry.LoggedAt.IsZero() {
		entry.LoggedAt = time.Now().UTC()
	}
	res, err := repo.db.NamedExec(`INSERT INTO toot_log
		(logged_at, instance, action, status_id, scheduled_at, text)
		VALUES(:logged_at, :instance, :action, :status_id, :scheduled_at, :text)`, entry)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	entry.Id = int(id)
	return nil
}

func (repo *Repo) GetTootLog(instance string, limit int) ([]*TootLogEntry, error) {

	repo.muDb.RLock()
	defer repo.muDb.RUnlock()

	res := []*TootLogEntry{}
	err := repo.db.Select(&res, `SELECT id, logged_at, instance, action, status_id, scheduled_at, text
		FROM toot_log WHERE instance=? ORDER BY id DESC LIMIT ?`, instance, limit)
	if err != nil {
		return nil, err
	}
	return res, nil
}
