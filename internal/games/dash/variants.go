package dash

// Variant is a registered flavor of the game.
// A variant without rows uses the classic board sized by the config grid,
// or the config's own layout rows when present.
type Variant struct {
	ID    string
	Title string
	Rows  []string
}

var variants = []Variant{
	{
		ID:    "dash",
		Title: "Dash",
	},
	{
		ID:    "dash_maze",
		Title: "Dash (Maze)",
		Rows: []string{
			"################################",
			"#@.....#.........#.............#",
			"#.####.#.#######.#.#########.#.#",
			"#.#....#.#.....#...#.......#.#.#",
			"#.#.####.#.###.#####.#####.#.#.#",
			"#.#......#...#.E.....#...#...#.#",
			"#.########.#.#########.#.#####.#",
			"#.......E..#...........#......G#",
			"################################",
		},
	},
	{
		ID:    "dash_field",
		Title: "Dash (Open Field)",
		Rows: []string{
			"................................",
			"..@.............................",
			"................................",
			".....##..........##.......Q.....",
			".....##..........##.............",
			"..........E.....................",
			"................................",
			"...................E.......##...",
			"......Q....................##...",
			"............................G...",
			"................................",
			"################################",
		},
	},
}

// Variants returns the built-in variants in registration order.
func Variants() []Variant {
	out := make([]Variant, len(variants))
	copy(out, variants)
	return out
}
