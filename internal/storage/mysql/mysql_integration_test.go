//go:build integration

package mysql_test

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"testing"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/domain"
	mysqlrepo "hotel_booking/internal/storage/mysql"
)

// ---------- small helpers ----------
func pstr(s string) *string { return &s }

func migrationsDir() string {
	if v := os.Getenv("MIGRATIONS_DIR"); v != "" {
		return v
	}
	return "migrations"
}

func applyMigrations(t *testing.T, db *sql.DB) {
	t.Helper()
	dir := migrationsDir()

	ents, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read migrations dir %s: %v", dir, err)
	}
	var files []string
	for _, e := range ents {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".sql" {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}
	if len(files) == 0 {
		t.Fatalf("no .sql files in %s", dir)
	}
	sort.Strings(files)

	for _, f := range files {
		sqlBytes, err := os.ReadFile(f)
		if err != nil {
			t.Fatalf("read %s: %v", f, err)
		}
		if _, err := db.Exec(string(sqlBytes)); err != nil {
			t.Fatalf("exec %s: %v", f, err)
		}
	}
}

func startMySQL(t *testing.T) *sql.DB {
	t.Helper()
	// Start isolated MySQL; let Docker pick a free host port.
	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("dockertest: %v", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "mysql",
		Tag:        "8.0.36",
		Env: []string{
			"MYSQL_ROOT_PASSWORD=root",
			"MYSQL_DATABASE=booking",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("run mysql: %v", err)
	}
	t.Cleanup(func() { _ = pool.Purge(resource) })

	dsn := fmt.Sprintf("root:root@tcp(127.0.0.1:%s)/booking?parseTime=true&multiStatements=true&charset=utf8mb4,utf8&loc=UTC",
		resource.GetPort("3306/tcp"))

	var db *sql.DB
	if err := pool.Retry(func() error {
		var e error
		db, e = sql.Open("mysql", dsn)
		if e != nil {
			return e
		}
		return db.Ping()
	}); err != nil {
		t.Fatalf("connect mysql: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	applyMigrations(t, db)
	return db
}

// ---------- the test ----------
func TestRepo_MySQL_CatalogAndBookings(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	// Arrange: two hotels, three rooms
	for _, h := range []domain.Hotel{
		{ID: "h-1", Name: "Riverside Inn", City: "Lyon", Country: "France", Rating: 4.2, Amenities: []string{"WiFi"}},
		{ID: "h-2", Name: "Le Grand Paris", City: "Paris", Country: "France", Rating: 4.9},
	} {
		require.NoError(t, repo.UpsertHotel(ctx, h))
	}
	require.NoError(t, repo.UpsertRooms(ctx, "h-2", []domain.Room{
		{ID: "r-suite", Name: "Suite", Type: "suite", Capacity: 4, PricePerNight: 420, Available: true},
		{ID: "r-double", Name: "Double", Type: "double", Capacity: 2, PricePerNight: 150, Available: true},
	}))
	require.NoError(t, repo.UpsertRooms(ctx, "h-1", []domain.Room{
		{ID: "r-single", Name: "Single", Type: "single", Capacity: 1, PricePerNight: 80, Available: false},
	}))

	// Hotels: rating desc
	hs, err := repo.ListHotels(ctx)
	require.NoError(t, err)
	require.Len(t, hs, 2)
	assert.Equal(t, "h-2", hs[0].ID)
	assert.Equal(t, []string{"WiFi"}, hs[1].Amenities)
	assert.Equal(t, []string{}, hs[0].Amenities)

	// Rooms: scoped to hotel, price asc
	rs, err := repo.ListRooms(ctx, "h-2")
	require.NoError(t, err)
	require.Len(t, rs, 2)
	assert.Equal(t, "r-double", rs[0].ID)
	assert.Equal(t, 150.0, rs[0].PricePerNight)
	assert.Equal(t, "h-2", rs[0].HotelID)

	// Bookings
	in := domain.NewDate(2024, time.January, 1)
	out := domain.NewDate(2024, time.January, 3)
	first, err := repo.InsertBooking(ctx, domain.NewBooking{
		UserID: "user-1", HotelID: "h-2", RoomID: "r-double",
		CheckIn: in, CheckOut: out, Guests: 2, TotalPrice: 300,
		Status: domain.BookingConfirmed,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	time.Sleep(10 * time.Millisecond)
	second, err := repo.InsertBooking(ctx, domain.NewBooking{
		UserID: "user-1", HotelID: "h-1", RoomID: "r-single",
		CheckIn: in, CheckOut: out, Guests: 1, TotalPrice: 160,
		SpecialRequests: pstr("quiet room"), Status: domain.BookingConfirmed,
	})
	require.NoError(t, err)

	list, err := repo.ListBookings(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID, "newest first")
	assert.Equal(t, "quiet room", *list[0].SpecialRequests)
	assert.Equal(t, "Riverside Inn", list[0].Hotel.Name)
	assert.Equal(t, "Single", list[0].Room.Name)
	assert.Nil(t, list[1].SpecialRequests)
	assert.Equal(t, in, list[1].CheckIn)
	assert.Equal(t, out, list[1].CheckOut)
	assert.Equal(t, 300.0, list[1].TotalPrice)

	none, err := repo.ListBookings(ctx, "someone-else")
	require.NoError(t, err)
	assert.Empty(t, none)

	// The schema rejects a stay whose check-out is not after check-in.
	_, err = repo.InsertBooking(ctx, domain.NewBooking{
		UserID: "user-1", HotelID: "h-2", RoomID: "r-double",
		CheckIn: out, CheckOut: in, Guests: 1, Status: domain.BookingConfirmed,
	})
	assert.Error(t, err)
}

func TestRepo_MySQL_Profiles(t *testing.T) {
	db := startMySQL(t)
	repo := mysqlrepo.New(db)
	ctx := context.Background()

	_, ok, err := repo.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	assert.False(t, ok, "no row is no profile")

	_, err = db.ExecContext(ctx, `INSERT INTO profiles (user_id, full_name, avatar_url) VALUES (?, ?, ?)`,
		"user-1", "Ada Lovelace", "https://img.example/ada.png")
	require.NoError(t, err)

	p, ok, err := repo.GetProfile(ctx, "user-1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "user-1", p.UserID)
	assert.Equal(t, "Ada Lovelace", *p.FullName)
	assert.Nil(t, p.Phone)
	assert.Equal(t, "https://img.example/ada.png", *p.AvatarURL)
}
