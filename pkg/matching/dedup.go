package matching

import (
	"math"
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// FieldKind selects the similarity function for a dedup match field.
type FieldKind string

const (
	FieldName       FieldKind = "name" // token-sort similarity
	FieldText       FieldKind = "text" // same as name, lower threshold semantics
	FieldEmail      FieldKind = "email"
	FieldPhone      FieldKind = "phone"
	FieldIdentifier FieldKind = "identifier" // VAT, product code, barcode: exact or nothing
)

// Dedup thresholds.
const (
	strongSignalThreshold = 0.95
	emailFieldThreshold   = 0.90
	nameFieldThreshold    = 0.70
	defaultPairThreshold  = 0.65
)

// MatchField declares one field participating in pairwise comparison.
type MatchField struct {
	Name   string
	Kind   FieldKind
	Weight float64 // weights across a config sum to 1.0
}

// DedupConfig declares the match fields for one entity type.
type DedupConfig struct {
	EntityType    string
	Fields        []MatchField
	PairThreshold float64 // 0 = defaultPairThreshold
}

// DedupRecord is a candidate record projected to its match fields.
type DedupRecord struct {
	ID     int64
	Fields map[string]string
}

// PairScore is the similarity verdict for one record pair.
type PairScore struct {
	Score         float64
	MatchedFields []string
	StrongSignal  bool
}

// DuplicateCluster is a resolved group of likely-duplicate records.
type DuplicateCluster struct {
	RecordIDs     []int64 // ascending
	MasterID      int64
	Score         float64 // max pair score inside the cluster
	MatchedFields []string
}

// ComparePair scores two records under the config.
//
// Strong-signal override: any identifier-class field (email, phone,
// identifier) scoring >= 0.95 makes the pair an immediate duplicate with
// score 1.0. Whether two identifier fields each below 0.95 should combine
// into an override is deliberately left unanswered; only the narrow
// single-field rule is implemented.
func ComparePair(cfg DedupConfig, a, b DedupRecord) PairScore {
	var (
		weightedSum float64
		weightTotal float64
		matched     []string
	)

	for _, f := range cfg.Fields {
		va, vb := normalize(a.Fields[f.Name]), normalize(b.Fields[f.Name])
		if va == "" || vb == "" {
			continue
		}
		sim := fieldSimilarity(f.Kind, va, vb)

		if isIdentifierKind(f.Kind) && sim >= strongSignalThreshold {
			return PairScore{Score: 1.0, MatchedFields: []string{f.Name}, StrongSignal: true}
		}

		if sim >= fieldThreshold(f.Kind) {
			weightedSum += f.Weight * sim
			weightTotal += f.Weight
			matched = append(matched, f.Name)
		}
	}

	if weightTotal == 0 {
		return PairScore{}
	}
	return PairScore{Score: weightedSum / weightTotal, MatchedFields: matched}
}

// Cluster runs pairwise comparison over all records and groups pairs
// crossing the overall threshold with union-find. Clusters of size >= 2
// become duplicate groups. Deterministic for a given snapshot: records are
// processed in ascending id order and masters are chosen by a stable
// heuristic, so rerunning on the same input yields identical groups.
func Cluster(cfg DedupConfig, records []DedupRecord) []DuplicateCluster {
	threshold := cfg.PairThreshold
	if threshold <= 0 {
		threshold = defaultPairThreshold
	}

	sorted := make([]DedupRecord, len(records))
	copy(sorted, records)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID < sorted[j].ID })

	byID := make(map[int64]DedupRecord, len(sorted))
	uf := newUnionFind()
	type pairKey struct{ a, b int64 }
	pairScores := make(map[pairKey]PairScore)

	for i, a := range sorted {
		byID[a.ID] = a
		uf.add(a.ID)
		for _, b := range sorted[i+1:] {
			ps := ComparePair(cfg, a, b)
			if ps.Score >= threshold {
				uf.union(a.ID, b.ID)
				pairScores[pairKey{a.ID, b.ID}] = ps
			}
		}
	}

	var out []DuplicateCluster
	for _, members := range uf.clusters() {
		if len(members) < 2 {
			continue
		}
		sort.Slice(members, func(i, j int) bool { return members[i] < members[j] })

		cluster := DuplicateCluster{RecordIDs: members}
		fieldSet := make(map[string]bool)
		for i, a := range members {
			for _, b := range members[i+1:] {
				if ps, ok := pairScores[pairKey{a, b}]; ok {
					cluster.Score = math.Max(cluster.Score, ps.Score)
					for _, f := range ps.MatchedFields {
						fieldSet[f] = true
					}
				}
			}
		}
		for f := range fieldSet {
			cluster.MatchedFields = append(cluster.MatchedFields, f)
		}
		sort.Strings(cluster.MatchedFields)
		cluster.MasterID = selectMaster(members, byID)
		out = append(out, cluster)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].RecordIDs[0] < out[j].RecordIDs[0] })
	return out
}

// selectMaster picks the record with the most filled fields; ties break to
// the lowest id. Members must be sorted ascending.
func selectMaster(members []int64, byID map[int64]DedupRecord) int64 {
	master := members[0]
	best := filledFields(byID[master])
	for _, id := range members[1:] {
		if n := filledFields(byID[id]); n > best {
			master, best = id, n
		}
	}
	return master
}

func filledFields(r DedupRecord) int {
	n := 0
	for _, v := range r.Fields {
		if strings.TrimSpace(v) != "" {
			n++
		}
	}
	return n
}

func fieldSimilarity(kind FieldKind, a, b string) float64 {
	switch kind {
	case FieldEmail:
		return emailSimilarity(a, b)
	case FieldPhone:
		return phoneSimilarity(a, b)
	case FieldIdentifier:
		if a == b {
			return 1.0
		}
		return 0.0
	default:
		return float64(fuzzy.TokenSortRatio(a, b)) / 100.0
	}
}

func fieldThreshold(kind FieldKind) float64 {
	switch kind {
	case FieldEmail:
		return emailFieldThreshold
	case FieldPhone:
		return emailFieldThreshold
	case FieldIdentifier:
		return 1.0
	default:
		return nameFieldThreshold
	}
}

func isIdentifierKind(kind FieldKind) bool {
	return kind == FieldEmail || kind == FieldPhone || kind == FieldIdentifier
}

// emailSimilarity: exact = 1.0; same domain with a different local part
// lands in [0.5, 1.0) scaled by local-part similarity; otherwise plain
// string similarity.
func emailSimilarity(a, b string) float64 {
	if a == b {
		return 1.0
	}
	la, da, oka := splitEmail(a)
	lb, db, okb := splitEmail(b)
	if oka && okb && da == db {
		return 0.5 + 0.5*float64(fuzzy.Ratio(la, lb))/100.0
	}
	return float64(fuzzy.Ratio(a, b)) / 100.0
}

func splitEmail(s string) (local, domain string, ok bool) {
	at := strings.LastIndex(s, "@")
	if at <= 0 || at == len(s)-1 {
		return "", "", false
	}
	return s[:at], s[at+1:], true
}

// phoneSimilarity compares digit sequences: equal = 1.0; suffix containment
// (country-code prefix difference) = 0.95; matching last seven digits = 0.90.
func phoneSimilarity(a, b string) float64 {
	da, db := digitsOnly(a), digitsOnly(b)
	if da == "" || db == "" {
		return 0
	}
	if da == db {
		return 1.0
	}
	if strings.HasSuffix(da, db) || strings.HasSuffix(db, da) {
		return 0.95
	}
	if len(da) >= 7 && len(db) >= 7 && da[len(da)-7:] == db[len(db)-7:] {
		return 0.90
	}
	return 0
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
