/*
Package pagemap implements a compact lookup table from BMP code points to
small integer IDs.

The table is a two-level page table: the high byte of a code point selects a
page, the low byte an entry within the page. Pages which were never written
are not allocated and read as 0. Lookup is two array reads.

Memory:
  - Top: 256 * 2 = 512 bytes
  - Each populated page: 256 * 2 = 512 bytes
*/
package pagemap

// BMP maps code points 0..0xFFFF to IDs. The zero value is an empty map in
// which every code point maps to 0.
type BMP struct {
	top   [256]uint16 // page index (1-based); 0 means none
	pages []uint16    // flat: NumPages*256
}

// Lookup returns the ID for r. Code points outside the BMP, and code points
// never set, return 0.
func (m *BMP) Lookup(r rune) uint16 {
	if r < 0 || r > 0xFFFF {
		return 0
	}
	pi := m.top[r>>8]
	if pi == 0 {
		return 0
	}
	return m.pages[int(pi-1)<<8+int(r&0xFF)]
}

// Set maps r to id. Code points outside the BMP are ignored.
func (m *BMP) Set(r rune, id uint16) {
	if r < 0 || r > 0xFFFF {
		return
	}
	pi := m.top[r>>8]
	if pi == 0 {
		if id == 0 {
			return
		}
		pi = m.ensurePage(uint16(r >> 8))
	}
	m.pages[int(pi-1)<<8+int(r&0xFF)] = id
}

// SetRange maps every code point in [from, to] to id.
func (m *BMP) SetRange(from, to rune, id uint16) {
	if from < 0 {
		from = 0
	}
	if to > 0xFFFF {
		to = 0xFFFF
	}
	for r := from; r <= to; r++ {
		m.Set(r, id)
	}
}

// NumPages returns the number of allocated pages.
func (m *BMP) NumPages() int { return len(m.pages) >> 8 }

func (m *BMP) ensurePage(hi uint16) uint16 {
	if pi := m.top[hi]; pi != 0 {
		return pi
	}
	m.pages = append(m.pages, make([]uint16, 256)...)
	pi := uint16(len(m.pages) >> 8)
	m.top[hi] = pi
	return pi
}
