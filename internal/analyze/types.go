package analyze

// FileChange is one parsed numstat entry: a touched file with its line
// delta and extension-derived category. Binary files carry zero counts.
type FileChange struct {
	Path     string
	Added    int
	Deleted  int
	Category string
}

// Analysis is the full summary of one change set. It is built once by
// [Summarize] and treated as read-only afterwards.
type Analysis struct {
	Files     []FileChange
	Languages *Counter
	Added     int
	Deleted   int
	Signals   *SignalSet
}

// Counter counts string keys while remembering first-seen order, so that
// ties in [Counter.MostCommon] resolve deterministically.
type Counter struct {
	counts map[string]int
	order  []string
}

// NewCounter returns an empty Counter.
func NewCounter() *Counter {
	return &Counter{counts: make(map[string]int)}
}

// Add increments the count for key.
func (c *Counter) Add(key string) {
	if _, ok := c.counts[key]; !ok {
		c.order = append(c.order, key)
	}
	c.counts[key]++
}

// Get returns the count for key (zero if absent).
func (c *Counter) Get(key string) int {
	return c.counts[key]
}

// Len returns the number of distinct keys.
func (c *Counter) Len() int {
	return len(c.order)
}

// Entry is a key with its count.
type Entry struct {
	Key   string
	Count int
}

// MostCommon returns up to n entries ordered by descending count, with
// first-seen order breaking ties. n <= 0 returns all entries.
func (c *Counter) MostCommon(n int) []Entry {
	entries := make([]Entry, 0, len(c.order))
	for _, k := range c.order {
		entries = append(entries, Entry{Key: k, Count: c.counts[k]})
	}
	// Stable insertion sort: keys were appended in first-seen order and the
	// sort must not reorder equal counts.
	for i := 1; i < len(entries); i++ {
		for j := i; j > 0 && entries[j].Count > entries[j-1].Count; j-- {
			entries[j], entries[j-1] = entries[j-1], entries[j]
		}
	}
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}
	return entries
}
