package cert

// EvaluationDoc names one of the three documents in the evaluation bundle.
type EvaluationDoc int

const (
	OpTrainEval EvaluationDoc = iota
	OpSkillsEval
	TrainEval
)

var AllEvaluationDocs = []EvaluationDoc{OpTrainEval, OpSkillsEval, TrainEval}

func (d EvaluationDoc) String() string {
	switch d {
	case OpTrainEval:
		return "Operator Training Evaluation"
	case OpSkillsEval:
		return "Operator Skills Evaluation"
	case TrainEval:
		return "Training Evaluation"
	default:
		return "Unknown"
	}
}

// EvaluationBundle is the separate evaluation-document sub-resource. It owns
// its own one-shot lock, independent of the certification record's, so the
// two can be out of sync.
type EvaluationBundle struct {
	nik        string
	evalNumber string
	files      map[EvaluationDoc]*FileAttachment
	gate       DocumentGate
	lock       LockController
}

func NewEvaluationBundle(nik string, gate DocumentGate) (*EvaluationBundle, error) {
	if err := ValidateNIK(nik); err != nil {
		return nil, err
	}
	return &EvaluationBundle{
		nik:   nik,
		files: make(map[EvaluationDoc]*FileAttachment, len(AllEvaluationDocs)),
		gate:  gate,
	}, nil
}

func (b *EvaluationBundle) NIK() string {
	return b.nik
}

func (b *EvaluationBundle) Locked() bool {
	return b.lock.Locked()
}

func (b *EvaluationBundle) SetEvalNumber(n string) error {
	if b.lock.Locked() {
		return ErrBundleLocked
	}
	b.evalNumber = n
	return nil
}

func (b *EvaluationBundle) EvalNumber() string {
	return b.evalNumber
}

// Attach validates and stores one document. Rejection clears the selection,
// same as the certificate slots.
func (b *EvaluationBundle) Attach(doc EvaluationDoc, f FileAttachment) error {
	if b.lock.Locked() {
		return ErrBundleLocked
	}
	if err := b.gate.Check(f); err != nil {
		delete(b.files, doc)
		return err
	}
	b.files[doc] = &f
	return nil
}

func (b *EvaluationBundle) File(doc EvaluationDoc) (FileAttachment, bool) {
	f, ok := b.files[doc]
	if !ok {
		return FileAttachment{}, false
	}
	return *f, true
}

// Complete requires all three documents plus the evaluation number.
func (b *EvaluationBundle) Complete() bool {
	if b.evalNumber == "" {
		return false
	}
	for _, doc := range AllEvaluationDocs {
		if _, ok := b.files[doc]; !ok {
			return false
		}
	}
	return true
}

// MarkPersisted locks the bundle once its documents are on record.
func (b *EvaluationBundle) MarkPersisted() {
	b.lock.Lock()
}

// FormStatus summarizes an operator's paperwork for the dashboard: Closed
// once either the evaluation bundle or a certification record exists, New
// otherwise.
func FormStatus(certExists, evalComplete bool) string {
	if evalComplete || certExists {
		return "Closed"
	}
	return "New"
}
