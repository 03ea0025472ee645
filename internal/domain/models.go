package domain

type Objective struct {
	Id          string          `json:"id" yaml:"id"`
	Title       string          `json:"title" yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Owner       string          `json:"owner" yaml:"owner"`
	Team        string          `json:"team" yaml:"team"`
	Quarter     string          `json:"quarter" yaml:"quarter"`
	Year        int             `json:"year" yaml:"year"`
	Status      ObjectiveStatus `json:"status" yaml:"status"`
	Priority    Priority        `json:"priority" yaml:"priority"`
	Progress    int             `json:"progress" yaml:"progress"`
	CreatedAt   Date            `json:"created_at" yaml:"createdAt"`
	UpdatedAt   Date            `json:"updated_at" yaml:"updatedAt"`
	StartDate   Date            `json:"start_date" yaml:"startDate"`
	DueDate     Date            `json:"due_date" yaml:"dueDate"`
	KeyResults  []KeyResult     `json:"key_results" yaml:"keyResults"`
	KeyActions  []KeyAction     `json:"key_actions,omitempty" yaml:"keyActions,omitempty"`
}

type KeyResult struct {
	Id           string          `json:"id" yaml:"id"`
	Title        string          `json:"title" yaml:"title"`
	Description  string          `json:"description" yaml:"description"`
	TargetValue  float64         `json:"target_value" yaml:"targetValue"`
	CurrentValue float64         `json:"current_value" yaml:"currentValue"`
	Unit         string          `json:"unit" yaml:"unit"`
	Progress     int             `json:"progress" yaml:"progress"`
	Status       ObjectiveStatus `json:"status" yaml:"status"`
	Owner        string          `json:"owner" yaml:"owner"`
	CreatedAt    Date            `json:"created_at" yaml:"createdAt"`
	UpdatedAt    Date            `json:"updated_at" yaml:"updatedAt"`
	StartDate    Date            `json:"start_date" yaml:"startDate"`
	DueDate      Date            `json:"due_date" yaml:"dueDate"`
	Milestones   []Milestone     `json:"milestones,omitempty" yaml:"milestones,omitempty"`
}

type KeyAction struct {
	Id           string       `json:"id" yaml:"id"`
	Title        string       `json:"title" yaml:"title"`
	Description  string       `json:"description" yaml:"description"`
	StartDate    Date         `json:"start_date" yaml:"startDate"`
	EndDate      Date         `json:"end_date" yaml:"endDate"`
	Progress     int          `json:"progress" yaml:"progress"`
	Status       ActionStatus `json:"status" yaml:"status"`
	Assignee     string       `json:"assignee" yaml:"assignee"`
	Dependencies []string     `json:"dependencies,omitempty" yaml:"dependencies,omitempty"`
}

type Milestone struct {
	Id          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Date        Date   `json:"date" yaml:"date"`
	Completed   bool   `json:"completed" yaml:"completed"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
}

type Team struct {
	Id      string   `json:"id" yaml:"id"`
	Name    string   `json:"name" yaml:"name"`
	Color   string   `json:"color" yaml:"color"`
	Members []string `json:"members" yaml:"members"`
}

// OKRData корневой снимок данных. Ядро его не изменяет
type OKRData struct {
	Objectives []Objective `json:"objectives" yaml:"objectives"`
	Teams      []Team      `json:"teams" yaml:"teams"`
}

// Clone возвращает глубокую копию снимка
func (d *OKRData) Clone() *OKRData {
	if d == nil {
		return nil
	}

	out := &OKRData{
		Objectives: make([]Objective, len(d.Objectives)),
		Teams:      make([]Team, len(d.Teams)),
	}

	for i, obj := range d.Objectives {
		krs := make([]KeyResult, len(obj.KeyResults))
		for j, kr := range obj.KeyResults {
			kr.Milestones = append([]Milestone(nil), kr.Milestones...)
			krs[j] = kr
		}
		obj.KeyResults = krs

		if obj.KeyActions != nil {
			actions := make([]KeyAction, len(obj.KeyActions))
			for j, a := range obj.KeyActions {
				a.Dependencies = append([]string(nil), a.Dependencies...)
				actions[j] = a
			}
			obj.KeyActions = actions
		}
		out.Objectives[i] = obj
	}

	for i, team := range d.Teams {
		team.Members = append([]string(nil), team.Members...)
		out.Teams[i] = team
	}

	return out
}
