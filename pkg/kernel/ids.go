package kernel

type ApplicantID string

func NewApplicantID(id string) ApplicantID { return ApplicantID(id) }
func (a ApplicantID) String() string       { return string(a) }
func (a ApplicantID) IsEmpty() bool        { return string(a) == "" }

type InterviewID string

func NewInterviewID(id string) InterviewID { return InterviewID(id) }
func (i InterviewID) String() string       { return string(i) }
func (i InterviewID) IsEmpty() bool        { return string(i) == "" }

type WorkHistoryID string

func NewWorkHistoryID(id string) WorkHistoryID { return WorkHistoryID(id) }
func (w WorkHistoryID) String() string         { return string(w) }
func (w WorkHistoryID) IsEmpty() bool          { return string(w) == "" }

type ActionLogID string

func NewActionLogID(id string) ActionLogID { return ActionLogID(id) }
func (l ActionLogID) String() string       { return string(l) }
func (l ActionLogID) IsEmpty() bool        { return string(l) == "" }

type StaffID string

func NewStaffID(id string) StaffID { return StaffID(id) }
func (s StaffID) String() string   { return string(s) }
func (s StaffID) IsEmpty() bool    { return string(s) == "" }

type SessionID string

func NewSessionID(id string) SessionID { return SessionID(id) }
func (s SessionID) String() string     { return string(s) }
func (s SessionID) IsEmpty() bool      { return string(s) == "" }
