package datarecording

import (
	"database/sql"
	"os"
	"strings"

	"github.com/fatih/structs"

	// Need to use SQLite connections.
	_ "github.com/mattn/go-sqlite3"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/chipletsim/simulation"
)

// SQLiteBackend is a Recorder that writes results into the results table
// of a SQLite database. Inserts are batched and flushed at exit.
type SQLiteBackend struct {
	*sql.DB
	statement *sql.Stmt

	batchSize int
	results   []simulation.Result
}

// NewSQLiteBackend creates a SQLiteBackend writing to filename plus a
// ".sqlite3" extension. An existing file with the same name is replaced.
func NewSQLiteBackend(filename string) *SQLiteBackend {
	b := &SQLiteBackend{
		batchSize: 50000,
	}

	b.createDatabase(filename + ".sqlite3")
	b.prepareStatement()

	atexit.Register(func() {
		b.Flush()
	})

	return b
}

// AddResult buffers one result, flushing when the batch is full.
func (b *SQLiteBackend) AddResult(r simulation.Result) {
	b.results = append(b.results, r)
	if len(b.results) >= b.batchSize {
		b.Flush()
	}
}

// Flush writes all buffered results into the database in one transaction.
func (b *SQLiteBackend) Flush() {
	if len(b.results) == 0 {
		return
	}

	tx, err := b.Begin()
	if err != nil {
		panic(err)
	}

	defer func() {
		innerErr := tx.Commit()
		if innerErr != nil {
			panic(innerErr)
		}
	}()

	for _, r := range b.results {
		_, err = tx.Stmt(b.statement).Exec(structs.Values(r)...)
		if err != nil {
			panic(err)
		}
	}

	b.results = b.results[:0]
}

// Close flushes the buffered results and closes the database.
func (b *SQLiteBackend) Close() error {
	b.Flush()
	return b.DB.Close()
}

func (b *SQLiteBackend) createDatabase(filename string) {
	_, err := os.Stat(filename)
	if err == nil {
		err = os.Remove(filename)
		if err != nil {
			panic(err)
		}
	}

	b.DB, err = sql.Open("sqlite3", filename)
	if err != nil {
		panic(err)
	}

	b.createTable()
}

func (b *SQLiteBackend) createTable() {
	columns := structs.Names(simulation.Result{})
	createTableSQL := "CREATE TABLE results (\n\t" +
		strings.Join(columns, ",\n\t") + "\n);"

	_, err := b.Exec(createTableSQL)
	if err != nil {
		panic(err)
	}
}

func (b *SQLiteBackend) prepareStatement() {
	placeholders := make([]string, len(structs.Names(simulation.Result{})))
	for i := range placeholders {
		placeholders[i] = "?"
	}

	sqlStmt := "INSERT INTO results VALUES (" +
		strings.Join(placeholders, ", ") + ")"

	var err error
	b.statement, err = b.Prepare(sqlStmt)
	if err != nil {
		panic(err)
	}
}
