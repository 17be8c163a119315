package huntflow

import (
	"fmt"
	"strings"
)

const applicantsPath = "applicants"

// ApplicantBody is the request body for applicant creation. Money is the
// salary cell passed through verbatim.
type ApplicantBody struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	MiddleName string `json:"middle_name,omitempty"`
	Money      string `json:"money"`
}

// Application attaches an applicant to a vacancy. Vacancy and Status are
// pointers: an absent lookup result is submitted as JSON null and left
// for the platform to reject.
type Application struct {
	Vacancy *int   `json:"vacancy"`
	Status  *int   `json:"status"`
	Comment string `json:"comment"`
	Files   []int  `json:"files"`
}

type createdResource struct {
	ID int `json:"id"`
}

// PrepareApplicantBody splits the full name into first, last and optional
// middle name. A name with fewer than two tokens is malformed roster data.
func PrepareApplicantBody(fullName, money string) (*ApplicantBody, error) {
	tokens := strings.Fields(fullName)
	if len(tokens) < 2 {
		return nil, fmt.Errorf("full name %q must contain at least a first and a last name", fullName)
	}

	body := &ApplicantBody{
		FirstName: tokens[0],
		LastName:  tokens[1],
		Money:     money,
	}

	if len(tokens) > 2 {
		body.MiddleName = tokens[2]
	}

	return body, nil
}

// CreateApplicant creates the applicant and returns its remote id. The
// call is not idempotent: a rerun creates a duplicate.
func (c *Client) CreateApplicant(body *ApplicantBody) (int, error) {
	var created createdResource
	if err := c.postJSON(applicantsPath, body, &created); err != nil {
		return 0, fmt.Errorf("creating applicant: %w", err)
	}

	return created.ID, nil
}

// AttachVacancy submits the application for an already created applicant
// and returns the application object echoed by the platform.
func (c *Client) AttachVacancy(applicantID int, application *Application) (map[string]interface{}, error) {
	path := fmt.Sprintf("%s/%d/vacancy", applicantsPath, applicantID)

	var echoed map[string]interface{}
	if err := c.postJSON(path, application, &echoed); err != nil {
		return nil, fmt.Errorf("attaching applicant %d to vacancy: %w", applicantID, err)
	}

	return echoed, nil
}
