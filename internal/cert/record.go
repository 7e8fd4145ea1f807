package cert

import (
	"fmt"
	"regexp"
	"time"
)

// Status is the overall certification state of one operator.
type Status string

const (
	StatusNew    Status = "New"
	StatusNotYet Status = "Not Yet"
	StatusPass   Status = "Pass"
)

var nikPattern = regexp.MustCompile(`^\d{8}$`)

// ValidateNIK checks the operator identifier format before anything else
// runs against it.
func ValidateNIK(nik string) error {
	if !nikPattern.MatchString(nik) {
		return ErrInvalidNIK
	}
	return nil
}

// SubmitPayload is the flat structure sent to persistence. Field names match
// the stored record columns; file content is raw base64 without a data URI
// prefix.
type SubmitPayload struct {
	NIK string `json:"nik"`

	SolderingWritten   Score  `json:"soldering_written"`
	SolderingPractical Score  `json:"soldering_practical"`
	SolderingResult    string `json:"soldering_result"`

	ScrewingTechnique Score  `json:"screwing_technique"`
	ScrewingWork      Score  `json:"screwing_work"`
	ScrewingResult    string `json:"screwing_result"`

	DSTiu    Score  `json:"ds_tiu"`
	DSAccu   Score  `json:"ds_accu"`
	DSHeco   Score  `json:"ds_heco"`
	DSMcc    Score  `json:"ds_mcc"`
	DSResult string `json:"ds_result"`

	Process       string `json:"process"`
	LSTarget      Score  `json:"ls_target"`
	LSActual      Score  `json:"ls_actual"`
	LSAchievement Score  `json:"ls_achievement"`
	LSResult      string `json:"ls_result"`

	MSAAccuracy   Score  `json:"msaa_accuracy"`
	MSAMissRate   Score  `json:"msaa_missrate"`
	MSAFalseAlarm Score  `json:"msaa_falsealarm"`
	MSAConfidence Score  `json:"msaa_confidence"`
	MSAResult     string `json:"msaa_result"`

	SolderingDocNo     string `json:"soldering_docno"`
	SolderingTrainDate string `json:"soldering_traindate"`
	SolderingExpDate   string `json:"soldering_expdate"`

	ScrewingDocNo     string `json:"screwing_docno"`
	ScrewingTrainDate string `json:"screwing_traindate"`
	ScrewingExpDate   string `json:"screwing_expdate"`

	MSADocNo     string `json:"msa_docno"`
	MSATrainDate string `json:"msa_traindate"`
	MSAExpDate   string `json:"msa_expdate"`

	FileSoldering string `json:"file_soldering"`
	FileScrewing  string `json:"file_screwing"`
	FileMSA       string `json:"file_msa"`

	Status string `json:"status"`
}

// CertificationRecord aggregates every station reading, the line simulation
// and the three certificate slots for one operator. All edits go through
// the record so the lock can refuse them after persistence.
type CertificationRecord struct {
	nik       string
	stations  *StationEvaluator
	lineSim   *LineSimulationRecord
	documents map[DocumentType]*DocumentSlot
	gate      DocumentGate

	loaded    bool
	persisted bool
	lock      LockController
}

func NewCertificationRecord(nik string, gate DocumentGate) (*CertificationRecord, error) {
	if err := ValidateNIK(nik); err != nil {
		return nil, err
	}
	r := &CertificationRecord{
		nik:       nik,
		stations:  NewStationEvaluator(nil),
		lineSim:   NewLineSimulationRecord(),
		documents: make(map[DocumentType]*DocumentSlot, len(AllDocumentTypes)),
		gate:      gate,
	}
	for _, t := range AllDocumentTypes {
		r.documents[t] = NewDocumentSlot(t)
	}
	return r, nil
}

// OnStationChange registers the observer notified after each station edit.
func (r *CertificationRecord) OnStationChange(fn ChangeFunc) {
	r.stations.onChange = fn
}

func (r *CertificationRecord) NIK() string {
	return r.nik
}

func (r *CertificationRecord) Locked() bool {
	return r.lock.Locked()
}

func (r *CertificationRecord) Persisted() bool {
	return r.persisted
}

func (r *CertificationRecord) Loaded() bool {
	return r.loaded
}

// MarkLoaded flags that this record came from a storage hit.
func (r *CertificationRecord) MarkLoaded() {
	r.loaded = true
}

// MarkPersisted fires after a successful save (or when loading an already
// saved record) and locks the record for good.
func (r *CertificationRecord) MarkPersisted() {
	r.persisted = true
	r.lock.Lock()
}

func (r *CertificationRecord) SetCriterion(s Station, criterion, raw string) (Verdict, error) {
	if r.lock.Locked() {
		return Indeterminate, ErrRecordLocked
	}
	return r.stations.SetCriterion(s, criterion, raw)
}

// StationVerdict recomputes the verdict from the current values on every
// call; verdicts are never stored on the record.
func (r *CertificationRecord) StationVerdict(s Station) Verdict {
	if s == LineSimulation {
		return r.lineSim.Verdict()
	}
	return r.stations.Verdict(s)
}

func (r *CertificationRecord) Reading(s Station) (*StationReading, bool) {
	return r.stations.Reading(s)
}

func (r *CertificationRecord) LineSimulation() *LineSimulationRecord {
	return r.lineSim
}

func (r *CertificationRecord) SelectProcess(p Process) error {
	if r.lock.Locked() {
		return ErrRecordLocked
	}
	return r.lineSim.SelectProcess(p)
}

func (r *CertificationRecord) SetActual(raw string) error {
	if r.lock.Locked() {
		return ErrRecordLocked
	}
	r.lineSim.SetActual(ParseScore(raw))
	return nil
}

func (r *CertificationRecord) Document(t DocumentType) (*DocumentSlot, bool) {
	slot, ok := r.documents[t]
	return slot, ok
}

func (r *CertificationRecord) SetDocumentNumber(t DocumentType, n string) error {
	if r.lock.Locked() {
		return ErrRecordLocked
	}
	slot, ok := r.documents[t]
	if !ok {
		return fmt.Errorf("unknown document slot %v", t)
	}
	slot.SetDocumentNumber(n)
	return nil
}

func (r *CertificationRecord) SetTrainingDate(t DocumentType, date time.Time) error {
	if r.lock.Locked() {
		return ErrRecordLocked
	}
	slot, ok := r.documents[t]
	if !ok {
		return fmt.Errorf("unknown document slot %v", t)
	}
	slot.SetTrainingDate(date)
	return nil
}

func (r *CertificationRecord) AttachDocument(t DocumentType, f FileAttachment) error {
	if r.lock.Locked() {
		return ErrRecordLocked
	}
	slot, ok := r.documents[t]
	if !ok {
		return fmt.Errorf("unknown document slot %v", t)
	}
	return slot.Attach(r.gate, f)
}

func (r *CertificationRecord) allPass() bool {
	for _, s := range AllStations {
		if r.StationVerdict(s) != Pass {
			return false
		}
	}
	for _, t := range AllDocumentTypes {
		if !r.documents[t].IsComplete() {
			return false
		}
	}
	return true
}

// OverallStatus is New only while the record has never been found in
// storage; an existing record is Pass or Not Yet from the all-of rule.
func (r *CertificationRecord) OverallStatus() Status {
	if !r.loaded && !r.persisted {
		return StatusNew
	}
	return r.resultStatus()
}

func (r *CertificationRecord) resultStatus() Status {
	if r.allPass() {
		return StatusPass
	}
	return StatusNotYet
}

// CanSubmit checks the same all-of condition and itemizes every failing
// station and certificate slot so the caller can show all of them at once.
func (r *CertificationRecord) CanSubmit() (bool, []string) {
	var violations []string
	for _, s := range AllStations {
		if r.StationVerdict(s) != Pass {
			violations = append(violations, fmt.Sprintf("%s result is Not Pass or empty", s))
		}
	}
	for _, t := range AllDocumentTypes {
		if !r.documents[t].IsComplete() {
			violations = append(violations, fmt.Sprintf("%s certificate status is Not Yet", t))
		}
	}
	return len(violations) == 0, violations
}

// Submit produces the persistence payload. A locked record never submits
// again, and an incomplete one fails with the full violation list.
func (r *CertificationRecord) Submit() (SubmitPayload, error) {
	if r.lock.Locked() {
		return SubmitPayload{}, ErrRecordLocked
	}
	if ok, violations := r.CanSubmit(); !ok {
		return SubmitPayload{}, &SubmitError{Violations: violations}
	}
	return r.BuildPayload(), nil
}

// BuildPayload flattens the record into the stored shape. Verdict and
// status strings are derived here, never read back from display state.
func (r *CertificationRecord) BuildPayload() SubmitPayload {
	p := SubmitPayload{
		NIK: r.nik,

		SolderingWritten:   r.score(Soldering, "written"),
		SolderingPractical: r.score(Soldering, "practical"),
		SolderingResult:    r.StationVerdict(Soldering).String(),

		ScrewingTechnique: r.score(Screwing, "technique"),
		ScrewingWork:      r.score(Screwing, "work"),
		ScrewingResult:    r.StationVerdict(Screwing).String(),

		DSTiu:    r.score(Screening, "tiu"),
		DSAccu:   r.score(Screening, "accuracy"),
		DSHeco:   r.score(Screening, "heco"),
		DSMcc:    r.score(Screening, "mcc"),
		DSResult: r.StationVerdict(Screening).String(),

		Process:       string(r.lineSim.Process()),
		LSTarget:      r.lineSim.Target(),
		LSActual:      r.lineSim.Actual(),
		LSAchievement: r.lineSim.Achievement(),
		LSResult:      r.lineSim.Verdict().String(),

		MSAAccuracy:   r.score(MSA, "accuracy"),
		MSAMissRate:   r.score(MSA, "missRate"),
		MSAFalseAlarm: r.score(MSA, "falseAlarm"),
		MSAConfidence: r.score(MSA, "confidence"),
		MSAResult:     r.StationVerdict(MSA).String(),

		Status: string(r.resultStatus()),
	}

	p.SolderingDocNo, p.SolderingTrainDate, p.SolderingExpDate, p.FileSoldering = r.slotFields(DocSoldering)
	p.ScrewingDocNo, p.ScrewingTrainDate, p.ScrewingExpDate, p.FileScrewing = r.slotFields(DocScrewing)
	p.MSADocNo, p.MSATrainDate, p.MSAExpDate, p.FileMSA = r.slotFields(DocMSA)

	return p
}

func (r *CertificationRecord) score(s Station, criterion string) Score {
	reading, ok := r.stations.Reading(s)
	if !ok {
		return Score{}
	}
	return reading.Get(criterion)
}

func (r *CertificationRecord) slotFields(t DocumentType) (docNo, train, exp, file string) {
	slot := r.documents[t]
	docNo = slot.DocumentNumber()
	if d, ok := slot.TrainingDate(); ok {
		train = d.Format(dateLayout)
	}
	if d, ok := slot.ExpiryDate(); ok {
		exp = d.Format(dateLayout)
	}
	if f, ok := slot.File(); ok {
		file = EncodeBase64(f.Content)
	}
	return docNo, train, exp, file
}

// RecordFromPayload rebuilds a record from the flat shape, both when a
// client submits one and when a stored row is re-displayed. Verdicts and the
// achievement are recomputed from the raw values, not trusted from the
// payload.
func RecordFromPayload(p SubmitPayload, gate DocumentGate) (*CertificationRecord, error) {
	r, err := NewCertificationRecord(p.NIK, gate)
	if err != nil {
		return nil, err
	}

	loads := map[Station]map[string]Score{
		Soldering: {"written": p.SolderingWritten, "practical": p.SolderingPractical},
		Screwing:  {"technique": p.ScrewingTechnique, "work": p.ScrewingWork},
		Screening: {"tiu": p.DSTiu, "accuracy": p.DSAccu, "heco": p.DSHeco, "mcc": p.DSMcc},
		MSA: {
			"accuracy":   p.MSAAccuracy,
			"missRate":   p.MSAMissRate,
			"falseAlarm": p.MSAFalseAlarm,
			"confidence": p.MSAConfidence,
		},
	}
	for s, scores := range loads {
		if err := r.stations.Load(s, scores); err != nil {
			return nil, err
		}
	}

	if p.Process != "" {
		if err := r.lineSim.SelectProcess(Process(p.Process)); err != nil {
			return nil, err
		}
		r.lineSim.SetActual(p.LSActual)
	}

	type slotIn struct {
		docType DocumentType
		docNo   string
		train   string
		file    string
	}
	for _, in := range []slotIn{
		{DocSoldering, p.SolderingDocNo, p.SolderingTrainDate, p.FileSoldering},
		{DocScrewing, p.ScrewingDocNo, p.ScrewingTrainDate, p.FileScrewing},
		{DocMSA, p.MSADocNo, p.MSATrainDate, p.FileMSA},
	} {
		slot := r.documents[in.docType]
		slot.SetDocumentNumber(in.docNo)
		if in.train != "" {
			d, err := time.Parse(dateLayout, in.train)
			if err != nil {
				return nil, fmt.Errorf("%s training date: %w", in.docType, err)
			}
			slot.SetTrainingDate(d)
		}
		if in.file != "" {
			content, err := DecodeBase64(in.file)
			if err != nil {
				return nil, fmt.Errorf("%s file: %w", in.docType, err)
			}
			f := FileAttachment{
				Name:      fmt.Sprintf("%s.pdf", in.docType),
				MediaType: PDFMediaType,
				Size:      int64(len(content)),
				Content:   content,
			}
			if err := slot.Attach(gate, f); err != nil {
				return nil, fmt.Errorf("%s file: %w", in.docType, err)
			}
		}
	}

	return r, nil
}
