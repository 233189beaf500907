package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// loadItems reads one suggestion per line from path.
func loadItems(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open items: %w", err)
	}
	defer f.Close()
	items, err := readItems(f)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return items, nil
}

// readItems returns the trimmed, non-empty lines of r. Lines starting with
// '#' are comments.
func readItems(r io.Reader) ([]string, error) {
	var items []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		items = append(items, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

var countries = []string{
	"Argentina", "Australia", "Austria", "Belgium", "Brazil", "Canada",
	"Chile", "China", "Colombia", "Croatia", "Czechia", "Denmark", "Egypt",
	"Estonia", "Finland", "France", "Germany", "Greece", "Hungary",
	"Iceland", "India", "Indonesia", "Ireland", "Israel", "Italy", "Japan",
	"Kenya", "Latvia", "Lithuania", "Luxembourg", "Mexico", "Morocco",
	"Netherlands", "New Zealand", "Nigeria", "Norway", "Peru", "Poland",
	"Portugal", "Romania", "Singapore", "Slovakia", "Slovenia",
	"South Africa", "South Korea", "Spain", "Sweden", "Switzerland",
	"Thailand", "Turkey", "Ukraine", "United Kingdom", "United States",
	"Uruguay", "Vietnam",
}
