package storage

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/mkarev/trajlab/internal/physics"
)

var csvHeader = []string{"time", "x", "y", "vx", "vy", "v", "ke", "pe", "e_total"}

// WriteSamplesCSV writes a trajectory as CSV, one sample per row in
// header order.
func WriteSamplesCSV(out io.Writer, samples []physics.Sample) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	if err := w.Write(csvHeader); err != nil {
		return err
	}

	for _, p := range samples {
		row := make([]string, 0, len(csvHeader))
		for _, val := range []float64{p.Time, p.X, p.Y, p.VX, p.VY, p.V, p.Kinetic, p.Potential, p.TotalEnergy} {
			row = append(row, strconv.FormatFloat(val, 'f', 6, 64))
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	w.Flush()
	return w.Error()
}

// ReadSamplesCSV parses trajectory CSV written by WriteSamplesCSV.
// Malformed rows are skipped.
func ReadSamplesCSV(in io.Reader) ([]physics.Sample, error) {
	r := csv.NewReader(in)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []physics.Sample{}, nil
	}

	samples := make([]physics.Sample, 0, len(records)-1)
	for _, record := range records[1:] {
		if len(record) < len(csvHeader) {
			continue
		}

		vals := make([]float64, 0, len(csvHeader))
		ok := true
		for _, field := range record[:len(csvHeader)] {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				ok = false
				break
			}
			vals = append(vals, v)
		}
		if !ok {
			continue
		}

		samples = append(samples, physics.Sample{
			Time: vals[0], X: vals[1], Y: vals[2],
			VX: vals[3], VY: vals[4], V: vals[5],
			Kinetic: vals[6], Potential: vals[7], TotalEnergy: vals[8],
		})
	}

	return samples, nil
}
