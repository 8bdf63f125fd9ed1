package database

import (
    "context"
    "database/sql"
    "net"
    "time"

    "github.com/go-sql-driver/mysql"
)

// Pool sizing for a small admin API: a handful of staff issuing tickets
// and TTEs verifying them, never hundreds of concurrent callers.
const (
    maxOpenConns    = 20
    maxIdleConns    = 10
    connMaxLifetime = 30 * time.Minute
    pingTimeout     = 5 * time.Second
)

// Open builds the MySQL pool and verifies connectivity before returning.
// Times are stored and scanned in UTC; travel dates and clock times live
// in their own string columns and never pass through the driver's
// location handling.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
    cfg := mysql.NewConfig()
    cfg.User = user
    cfg.Passwd = pass
    cfg.Net = "tcp"
    cfg.Addr = net.JoinHostPort(host, port)
    cfg.DBName = name
    cfg.ParseTime = true // DATETIME columns scan into time.Time
    cfg.Loc = time.UTC
    cfg.Params = map[string]string{"charset": "utf8mb4"}

    db, err := sql.Open("mysql", cfg.FormatDSN())
    if err != nil {
        return nil, err
    }
    db.SetMaxOpenConns(maxOpenConns)
    db.SetMaxIdleConns(maxIdleConns)
    db.SetConnMaxLifetime(connMaxLifetime)

    ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
    defer cancel()
    if err := db.PingContext(ctx); err != nil {
        db.Close()
        return nil, err
    }
    return db, nil
}
