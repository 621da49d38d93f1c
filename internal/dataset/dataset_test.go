package dataset

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = `Franchise Name , INDUSTRY,Business Summary,Cash Required,Franchise Fee,Number of Units Open,Semi-Absentee Ownership,Passive Franchise,URL
Bean Scene,Coffee,Drive-thru coffee concept,"$40,000",25000,45,Yes,No,https://example.com/bean
Iron Works Gym,Fitness,Boutique strength training studio,"$80,000 +",40000,250,No,Yes,https://example.com/iron
Mystery Co,,,,,,,,`

func TestRead_NormalizesHeadersAndParsesRows(t *testing.T) {
	listings, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, listings, 3)

	bean := listings[0]
	assert.Equal(t, "Bean Scene", bean.FranchiseName)
	assert.Equal(t, "Coffee", bean.Industry)
	assert.Equal(t, "$40,000", bean.CashRequired)
	assert.True(t, bean.SemiAbsentee)
	assert.False(t, bean.Passive)

	iron := listings[1]
	assert.False(t, iron.SemiAbsentee)
	assert.True(t, iron.Passive)
	assert.Equal(t, "250", iron.UnitsOpen)

	// Empty cells stay empty rather than failing the load.
	assert.Equal(t, "", listings[2].Industry)
}

func TestRead_PreservesRowOrder(t *testing.T) {
	listings, err := Read(strings.NewReader(sampleCSV))
	require.NoError(t, err)

	assert.Equal(t, "Bean Scene", listings[0].FranchiseName)
	assert.Equal(t, "Iron Works Gym", listings[1].FranchiseName)
	assert.Equal(t, "Mystery Co", listings[2].FranchiseName)
}

func TestRead_MissingNameColumn(t *testing.T) {
	_, err := Read(strings.NewReader("industry,url\nCoffee,https://example.com"))
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)

	var loadErr *LoadError
	require.ErrorAs(t, err, &loadErr)
	assert.Contains(t, loadErr.Error(), "dataset not found")
}

func TestLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "listings.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	listings, err := Load(path)
	require.NoError(t, err)
	assert.Len(t, listings, 3)
}

func TestIsAffirmative(t *testing.T) {
	assert.True(t, isAffirmative("Yes"))
	assert.True(t, isAffirmative(" yes "))
	assert.True(t, isAffirmative("TRUE"))
	assert.False(t, isAffirmative("No"))
	assert.False(t, isAffirmative(""))
	assert.False(t, isAffirmative("maybe"))
}
