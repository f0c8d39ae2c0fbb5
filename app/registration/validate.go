package registration

import (
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultWalkInPassword is the well-known credential assigned to walk-in
// registrations created at the front desk. Every such account is created with
// must_change_password set, which forces a reset on first login.
const DefaultWalkInPassword = "123"

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9]([a-zA-Z0-9._-]*[a-zA-Z0-9])?@[a-zA-Z0-9]([a-zA-Z0-9.-]*[a-zA-Z0-9])?\.[a-zA-Z]{2,}$`)

// ValidateEmail applies the strict address policy: pattern match, local part
// up to 64 characters, domain up to 253, total up to 254.
func ValidateEmail(email string) error {
	if len(email) > 254 {
		return &ValidationError{Message: "Email address is too long (max 254 characters)"}
	}
	if !emailPattern.MatchString(email) {
		return &ValidationError{Message: "Invalid email address format"}
	}
	at := strings.LastIndex(email, "@")
	if at > 64 {
		return &ValidationError{Message: "Email local part is too long (max 64 characters)"}
	}
	if len(email)-at-1 > 253 {
		return &ValidationError{Message: "Email domain is too long (max 253 characters)"}
	}
	return nil
}

// ValidatePassword enforces the self-service complexity policy and names the
// first unmet rule.
func ValidatePassword(password string) error {
	if len(password) < 8 {
		return &ValidationError{Message: "Password must be at least 8 characters long"}
	}
	if !strings.ContainsAny(password, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		return &ValidationError{Message: "Password must contain at least one uppercase letter"}
	}
	if !strings.ContainsAny(password, "abcdefghijklmnopqrstuvwxyz") {
		return &ValidationError{Message: "Password must contain at least one lowercase letter"}
	}
	if !strings.ContainsAny(password, "0123456789") {
		return &ValidationError{Message: "Password must contain at least one number"}
	}
	if !strings.ContainsAny(password, "!@#$%^&*") {
		return &ValidationError{Message: "Password must contain at least one special character (!@#$%^&*)"}
	}
	return nil
}

// ValidID reports whether id parses as a UUID. Row ids are UUIDs; checking
// up front turns a malformed id into a 400 instead of a cast error from the
// database.
func ValidID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}

// IntakeRequest carries a registration submission, either self-service or an
// admin walk-in.
type IntakeRequest struct {
	StudentFirstName       string          `json:"student_first_name"`
	StudentLastName        string          `json:"student_last_name"`
	StudentMiddleName      string          `json:"student_middle_name"`
	StudentDateOfBirth     string          `json:"student_date_of_birth"`
	StudentAge             int             `json:"student_age"`
	StudentPhone           string          `json:"student_phone"`
	StudentEmail           string          `json:"student_email"`
	StudentAddress         string          `json:"student_address"`
	StudentSchool          string          `json:"student_school"`
	StudentGradeYear       string          `json:"student_grade_year"`
	StudentHealthDiagnosis string          `json:"student_health_diagnosis"`
	GuardianFirstName      string          `json:"guardian_first_name"`
	GuardianLastName       string          `json:"guardian_last_name"`
	GuardianRelationship   string          `json:"guardian_relationship"`
	GuardianPhone          string          `json:"guardian_phone"`
	GuardianOccupation     string          `json:"guardian_occupation"`
	GuardianEmail          string          `json:"guardian_email"`
	GuardianAddress        string          `json:"guardian_address"`
	BranchID               string          `json:"branch_id"`
	RegistrationFeeAmount  decimal.Decimal `json:"registration_fee_amount"`
	Username               string          `json:"username"`
	Password               string          `json:"password"`
	IsWalkIn               bool            `json:"is_walkin"`
	Instruments            []string        `json:"instruments"`
}

// requiredFields lists the mandatory intake fields in the order they are
// reported when missing.
var requiredFields = []struct {
	name  string
	value func(*IntakeRequest) string
}{
	{"student_first_name", func(r *IntakeRequest) string { return r.StudentFirstName }},
	{"student_last_name", func(r *IntakeRequest) string { return r.StudentLastName }},
	{"student_email", func(r *IntakeRequest) string { return r.StudentEmail }},
	{"student_phone", func(r *IntakeRequest) string { return r.StudentPhone }},
	{"guardian_first_name", func(r *IntakeRequest) string { return r.GuardianFirstName }},
	{"guardian_last_name", func(r *IntakeRequest) string { return r.GuardianLastName }},
	{"guardian_relationship", func(r *IntakeRequest) string { return r.GuardianRelationship }},
	{"guardian_phone", func(r *IntakeRequest) string { return r.GuardianPhone }},
	{"branch_id", func(r *IntakeRequest) string { return r.BranchID }},
}

// Validate checks the submission before any row is written. It also settles
// the credential: walk-ins get the default password, self-service submissions
// must pass the complexity policy.
func (r *IntakeRequest) Validate() error {
	for _, f := range requiredFields {
		if strings.TrimSpace(f.value(r)) == "" {
			return NewValidationError("Field %s is required", f.name)
		}
	}

	if err := ValidateEmail(r.StudentEmail); err != nil {
		return err
	}

	if r.RegistrationFeeAmount.Sign() < 0 {
		return &ValidationError{Message: "Registration fee amount cannot be negative"}
	}

	if r.IsWalkIn {
		r.Password = DefaultWalkInPassword
		return nil
	}
	if r.Password == "" {
		return &ValidationError{Message: "Password is required"}
	}
	return ValidatePassword(r.Password)
}

// EffectiveUsername is the account name recorded at intake: the submitted
// username, or the student email when none was given.
func (r *IntakeRequest) EffectiveUsername() string {
	if r.Username != "" {
		return r.Username
	}
	return r.StudentEmail
}
