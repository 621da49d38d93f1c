package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jonathan/franchise-advisor/internal/types"
)

// UpsertListing inserts a listing or updates the existing row with the same
// franchise name. Position preserves the source row order so recommendations
// stay stable across imports.
func (db *DB) UpsertListing(ctx context.Context, listing types.Listing, position int) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO listings (franchise_name, industry, business_summary, cash_required,
		                       franchise_fee, units_open, semi_absentee, passive, support, url, position)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 ON CONFLICT (franchise_name) DO UPDATE SET
		     industry = $2, business_summary = $3, cash_required = $4, franchise_fee = $5,
		     units_open = $6, semi_absentee = $7, passive = $8, support = $9, url = $10, position = $11
		 RETURNING id`,
		listing.FranchiseName, listing.Industry, listing.BusinessSummary, listing.CashRequired,
		listing.FranchiseFee, listing.UnitsOpen, listing.SemiAbsentee, listing.Passive,
		listing.Support, listing.URL, position,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to upsert listing %s: %w", listing.FranchiseName, err)
	}
	return id, nil
}

// ListListings retrieves every listing in source row order.
func (db *DB) ListListings(ctx context.Context) ([]types.Listing, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT franchise_name, industry, business_summary, cash_required,
		        franchise_fee, units_open, semi_absentee, passive, support, url
		 FROM listings ORDER BY position ASC, franchise_name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list listings: %w", err)
	}
	defer rows.Close()

	var listings []types.Listing
	for rows.Next() {
		var l types.Listing
		if err := rows.Scan(&l.FranchiseName, &l.Industry, &l.BusinessSummary, &l.CashRequired,
			&l.FranchiseFee, &l.UnitsOpen, &l.SemiAbsentee, &l.Passive, &l.Support, &l.URL); err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, l)
	}
	return listings, rows.Err()
}

// GetListingByName retrieves a single listing by franchise name. Returns nil
// when no row matches.
func (db *DB) GetListingByName(ctx context.Context, name string) (*types.Listing, error) {
	var l types.Listing
	err := db.pool.QueryRow(ctx,
		`SELECT franchise_name, industry, business_summary, cash_required,
		        franchise_fee, units_open, semi_absentee, passive, support, url
		 FROM listings WHERE franchise_name = $1`,
		name,
	).Scan(&l.FranchiseName, &l.Industry, &l.BusinessSummary, &l.CashRequired,
		&l.FranchiseFee, &l.UnitsOpen, &l.SemiAbsentee, &l.Passive, &l.Support, &l.URL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get listing %s: %w", name, err)
	}
	return &l, nil
}

// CountListings reports how many listings are stored.
func (db *DB) CountListings(ctx context.Context) (int, error) {
	var count int
	if err := db.pool.QueryRow(ctx, `SELECT COUNT(*) FROM listings`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return count, nil
}

// DeleteListings removes every stored listing. Used by the import tool's
// --replace mode.
func (db *DB) DeleteListings(ctx context.Context) error {
	if _, err := db.pool.Exec(ctx, `DELETE FROM listings`); err != nil {
		return fmt.Errorf("failed to delete listings: %w", err)
	}
	return nil
}
