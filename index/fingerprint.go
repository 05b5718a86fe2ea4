package index

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
)

// Fingerprint generates a stable hash of the row slice. The fingerprint
// changes when row content changes, so callers can tell whether a rebuilt
// index (or a derived structure such as the suggestion index) is already
// current.
func Fingerprint(rows []Row) string {
	h := sha256.New()

	for _, row := range rows {
		for _, s := range []string{
			row.ID,
			row.CallRange,
			row.Category,
			row.MapURL,
			row.Side,
			row.StartRaw,
			row.EndRaw,
			row.StartNum,
			row.EndNum,
			row.StartSuffix,
			row.EndSuffix,
			intText(row.Row),
			intText(row.ShelfLevel),
			intText(row.Locker),
			intText(row.BuildingFloor),
		} {
			h.Write([]byte(s))
			h.Write([]byte{0}) // separator
		}
	}

	return hex.EncodeToString(h.Sum(nil))
}

func intText(n *int) string {
	if n == nil {
		return ""
	}
	return strconv.Itoa(*n)
}
