package hepce

// SetHIV overwrites the Person's HIV status and stamps the change time
// (spec §4.5.8 analogue for HIV, driven by the HIV treatment event's
// suppression/CD4-restoration milestones).
func (p *Person) SetHIV(status HIV) {
	p.hiv.Status = status
	p.hiv.TimeChanged = p.currentTimestep
}
