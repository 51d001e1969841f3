package dlx

// cover removes node's column from the header row and removes every row
// that intersects that column from all other columns' vertical chains.
// During search every cover is later undone by uncover(node) in exactly
// reversed order, restoring the mesh to its prior state (the reversibility
// invariant); the forced-column covers made by New are never undone.
func (m *Mesh) cover(n handle) {
	header := m.at(n).header
	m.Tracer.Cover(m.at(header).col)

	m.detachColumn(header)

	hn := m.at(header)
	for d := hn.down; d != header; d = m.at(d).down {
		m.detachRow(d)
	}
}

func (m *Mesh) uncover(n handle) {
	header := m.at(n).header
	m.Tracer.Uncover(m.at(header).col)

	hn := m.at(header)
	for u := hn.up; u != header; u = m.at(u).up {
		m.attachRow(u)
	}

	m.attachColumn(header)
}

func (m *Mesh) detachColumn(header handle) {
	hn := m.at(header)
	m.at(hn.left).right = hn.right
	m.at(hn.right).left = hn.left
}

func (m *Mesh) attachColumn(header handle) {
	hn := m.at(header)
	m.at(hn.left).right = header
	m.at(hn.right).left = header
}

func (m *Mesh) detachRow(d handle) {
	for s := m.at(d).right; s != d; s = m.at(s).right {
		sn := m.at(s)
		m.at(sn.up).down = sn.down
		m.at(sn.down).up = sn.up
		m.columnSize[sn.col]--
	}
}

func (m *Mesh) attachRow(d handle) {
	for s := m.at(d).left; s != d; s = m.at(s).left {
		sn := m.at(s)
		m.at(sn.down).up = s
		m.at(sn.up).down = s
		m.columnSize[sn.col]++
	}
}
