package layout

import "fmt"

// SurfaceCode generates a rotated surface-code layout of odd distance d:
// d² data qubits on the odd grid positions and d²−1 ancillas on the even
// ones, wired to their diagonal data neighbors. Data-qubit rows alternate
// between the low and high frequency groups; ancillas sit in mid.
//
// Complexity: O(d²).
func SurfaceCode(distance int) (*Layout, error) {
	if distance <= 0 || distance%2 == 0 {
		return nil, fmt.Errorf("%w: got %d", ErrBadDistance, distance)
	}

	gridSize := 2*distance + 1
	neighbors := make(map[string]map[Direction]string)
	link := func(anc, data string, dir Direction) {
		if neighbors[anc] == nil {
			neighbors[anc] = make(map[Direction]string)
		}
		if neighbors[data] == nil {
			neighbors[data] = make(map[Direction]string)
		}
		neighbors[anc][dir] = data
		neighbors[data][invertDirection(dir)] = anc
	}

	var qubits []Qubit

	// Data qubits occupy the odd rows and columns; frequency groups
	// alternate row by row.
	freq := [2]string{"low", "high"}
	for row := 1; row < gridSize; row += 2 {
		for col := 1; col < gridSize; col += 2 {
			qubits = append(qubits, Qubit{
				Label:     dataLabel(row, col, distance),
				Role:      RoleData,
				FreqGroup: freq[(row/2)%2],
				Coords:    []int{row, col},
			})
		}
	}

	// wireAnc links one ancilla to every valid diagonal data neighbor.
	wireAnc := func(label string, row, col int) {
		for _, rs := range [2]int{1, -1} {
			for _, cs := range [2]int{1, -1} {
				dr, dc := row+rs, col+cs
				if dr < 0 || dr >= gridSize || dc < 0 || dc >= gridSize {
					continue
				}
				link(label, dataLabel(dr, dc, distance), shiftDirection(rs, cs))
			}
		}
	}

	// X-type ancillas: even rows, columns offset by the row's parity in
	// the 4-periodic brick pattern.
	xIndex := 1
	var xAncs []Qubit
	for row := 0; row < gridSize; row += 2 {
		for col := 2 + row%4; col < gridSize-1; col += 4 {
			label := fmt.Sprintf("X%d", xIndex)
			xIndex++
			xAncs = append(xAncs, Qubit{
				Label:     label,
				Role:      RoleAnc,
				StabType:  StabX,
				FreqGroup: "mid",
				Coords:    []int{row, col},
			})
			wireAnc(label, row, col)
		}
	}

	// Z-type ancillas fill the complementary brick pattern.
	zIndex := 1
	var zAncs []Qubit
	for row := 2; row < gridSize-1; row += 2 {
		for col := row % 4; col < gridSize; col += 4 {
			label := fmt.Sprintf("Z%d", zIndex)
			zIndex++
			zAncs = append(zAncs, Qubit{
				Label:     label,
				Role:      RoleAnc,
				StabType:  StabZ,
				FreqGroup: "mid",
				Coords:    []int{row, col},
			})
			wireAnc(label, row, col)
		}
	}

	qubits = append(append(qubits, xAncs...), zAncs...)
	for i := range qubits {
		qubits[i].Neighbors = neighbors[qubits[i].Label]
	}

	return New(fmt.Sprintf("rotated d-%d surface code", distance), distance, qubits)
}

// dataLabel indexes data qubits row-major over the odd grid positions,
// starting at D1 in the bottom-left corner.
func dataLabel(row, col, distance int) string {
	return fmt.Sprintf("D%d", 1+(row/2)*distance+col/2)
}

// shiftDirection translates a diagonal (row, col) shift to its direction;
// north is the increasing-row side.
func shiftDirection(rowShift, colShift int) Direction {
	switch {
	case rowShift > 0 && colShift > 0:
		return NorthEast
	case rowShift > 0:
		return NorthWest
	case colShift > 0:
		return SouthEast
	default:
		return SouthWest
	}
}

// invertDirection mirrors a diagonal direction through the origin.
func invertDirection(d Direction) Direction {
	switch d {
	case NorthEast:
		return SouthWest
	case NorthWest:
		return SouthEast
	case SouthEast:
		return NorthWest
	default:
		return NorthEast
	}
}
