package user

import (
	"weddinghub/models"
)

// loadCustomer fetches the actor's account and checks the customer role.
func (s *DefaultUserService) loadCustomer(actor *models.User) (*models.User, error) {
	if actor.IsVendor() {
		return nil, RoleError{Required: "customer"}
	}
	u, err := s.Repo.GetByID(actor.ID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, NotFoundError{ID: actor.ID}
	}
	return u, nil
}

// AddTask appends a planning task to the customer's checklist.
func (s *DefaultUserService) AddTask(actor *models.User, in TaskInput) (*models.User, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}

	u.Tasks = append(u.Tasks, models.Task{
		Name:     in.Name,
		Timeline: in.Timeline,
		Deadline: in.Deadline,
		Subtasks: []models.Subtask{},
	})
	return s.save(u)
}

// UpdateTask replaces a task's fields by index, keeping its subtasks.
func (s *DefaultUserService) UpdateTask(actor *models.User, index int, in TaskInput) (*models.User, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(u.Tasks) {
		return nil, ValidationError{Message: "task index out of range"}
	}

	t := &u.Tasks[index]
	t.Name = in.Name
	t.Timeline = in.Timeline
	t.Deadline = in.Deadline
	return s.save(u)
}

// RemoveTask drops a task by index.
func (s *DefaultUserService) RemoveTask(actor *models.User, index int) (*models.User, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(u.Tasks) {
		return nil, ValidationError{Message: "task index out of range"}
	}

	u.Tasks = append(u.Tasks[:index], u.Tasks[index+1:]...)
	return s.save(u)
}

// AddSubtask appends a checklist entry under a task.
func (s *DefaultUserService) AddSubtask(actor *models.User, taskIndex int, title string) (*models.User, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}
	if taskIndex < 0 || taskIndex >= len(u.Tasks) {
		return nil, ValidationError{Message: "task index out of range"}
	}
	if title == "" {
		return nil, ValidationError{Message: "subtask title is required"}
	}

	t := &u.Tasks[taskIndex]
	t.Subtasks = append(t.Subtasks, models.Subtask{Title: title})
	return s.save(u)
}

// ToggleSubtask flips a subtask's completed flag.
func (s *DefaultUserService) ToggleSubtask(actor *models.User, taskIndex, subIndex int) (*models.User, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}
	if taskIndex < 0 || taskIndex >= len(u.Tasks) {
		return nil, ValidationError{Message: "task index out of range"}
	}
	t := &u.Tasks[taskIndex]
	if subIndex < 0 || subIndex >= len(t.Subtasks) {
		return nil, ValidationError{Message: "subtask index out of range"}
	}

	t.Subtasks[subIndex].Completed = !t.Subtasks[subIndex].Completed
	return s.save(u)
}

// RemoveSubtask drops a subtask by index.
func (s *DefaultUserService) RemoveSubtask(actor *models.User, taskIndex, subIndex int) (*models.User, error) {
	u, err := s.loadCustomer(actor)
	if err != nil {
		return nil, err
	}
	if taskIndex < 0 || taskIndex >= len(u.Tasks) {
		return nil, ValidationError{Message: "task index out of range"}
	}
	t := &u.Tasks[taskIndex]
	if subIndex < 0 || subIndex >= len(t.Subtasks) {
		return nil, ValidationError{Message: "subtask index out of range"}
	}

	t.Subtasks = append(t.Subtasks[:subIndex], t.Subtasks[subIndex+1:]...)
	return s.save(u)
}
