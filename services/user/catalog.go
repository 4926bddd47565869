package user

import (
	"time"

	"weddinghub/models"

	"github.com/google/uuid"
)

// save persists the full account after an embedded-document edit.
func (s *DefaultUserService) save(u *models.User) (*models.User, error) {
	u.UpdatedAt = time.Now()
	if err := s.Repo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

// loadVendor fetches the actor's account and checks the vendor role.
func (s *DefaultUserService) loadVendor(actor *models.User) (*models.User, error) {
	if !actor.IsVendor() {
		return nil, RoleError{Required: "vendor"}
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

// AddService appends a catalog entry to the vendor's services.
func (s *DefaultUserService) AddService(actor *models.User, in ServiceDetailInput) (*models.User, error) {
	u, err := s.loadVendor(actor)
	if err != nil {
		return nil, err
	}

	u.ServiceDetails = append(u.ServiceDetails, models.ServiceDetail{
		ID:            uuid.New().String(),
		ServiceName:   in.ServiceName,
		ServiceType:   in.ServiceType,
		Description:   in.Description,
		PaymentPolicy: in.PaymentPolicy,
		MediaURLs:     in.MediaURLs,
		BasePrice:     in.BasePrice,
	})
	return s.save(u)
}

// UpdateService replaces the mutable fields of a catalog entry. Rating
// aggregates are owned by the review flow and never touched here.
func (s *DefaultUserService) UpdateService(actor *models.User, serviceID string, in ServiceDetailInput) (*models.User, error) {
	u, err := s.loadVendor(actor)
	if err != nil {
		return nil, err
	}

	for i := range u.ServiceDetails {
		if u.ServiceDetails[i].ID != serviceID {
			continue
		}
		sd := &u.ServiceDetails[i]
		sd.ServiceName = in.ServiceName
		sd.ServiceType = in.ServiceType
		sd.Description = in.Description
		sd.PaymentPolicy = in.PaymentPolicy
		if in.MediaURLs != nil {
			sd.MediaURLs = in.MediaURLs
		}
		sd.BasePrice = in.BasePrice
		return s.save(u)
	}
	return nil, ValidationError{Message: "service not found"}
}

// RemoveService drops a catalog entry and any packages attached to it.
func (s *DefaultUserService) RemoveService(actor *models.User, serviceID string) (*models.User, error) {
	u, err := s.loadVendor(actor)
	if err != nil {
		return nil, err
	}

	kept := u.ServiceDetails[:0]
	found := false
	for _, sd := range u.ServiceDetails {
		if sd.ID == serviceID {
			found = true
			continue
		}
		kept = append(kept, sd)
	}
	if !found {
		return nil, ValidationError{Message: "service not found"}
	}
	u.ServiceDetails = kept

	pkgs := u.Packages[:0]
	for _, p := range u.Packages {
		if p.ServiceID != serviceID {
			pkgs = append(pkgs, p)
		}
	}
	u.Packages = pkgs

	return s.save(u)
}

// AddPackage attaches a priced bundle to one of the vendor's services.
func (s *DefaultUserService) AddPackage(actor *models.User, in PackageInput) (*models.User, error) {
	u, err := s.loadVendor(actor)
	if err != nil {
		return nil, err
	}

	owned := false
	for _, sd := range u.ServiceDetails {
		if sd.ID == in.ServiceID {
			owned = true
			break
		}
	}
	if !owned {
		return nil, ValidationError{Message: "package must reference one of your services"}
	}

	u.Packages = append(u.Packages, models.Package{
		ID:           uuid.New().String(),
		PackageName:  in.PackageName,
		PackagePrice: in.PackagePrice,
		Description:  in.Description,
		ServiceID:    in.ServiceID,
	})
	return s.save(u)
}

// UpdatePackage replaces a package's fields, keeping its service binding
// unless a new owned service is supplied.
func (s *DefaultUserService) UpdatePackage(actor *models.User, packageID string, in PackageInput) (*models.User, error) {
	u, err := s.loadVendor(actor)
	if err != nil {
		return nil, err
	}

	for i := range u.Packages {
		if u.Packages[i].ID != packageID {
			continue
		}
		p := &u.Packages[i]
		p.PackageName = in.PackageName
		p.PackagePrice = in.PackagePrice
		p.Description = in.Description
		if in.ServiceID != "" && in.ServiceID != p.ServiceID {
			owned := false
			for _, sd := range u.ServiceDetails {
				if sd.ID == in.ServiceID {
					owned = true
					break
				}
			}
			if !owned {
				return nil, ValidationError{Message: "package must reference one of your services"}
			}
			p.ServiceID = in.ServiceID
		}
		return s.save(u)
	}
	return nil, ValidationError{Message: "package not found"}
}

// RemovePackage drops a package from the vendor's catalog.
func (s *DefaultUserService) RemovePackage(actor *models.User, packageID string) (*models.User, error) {
	u, err := s.loadVendor(actor)
	if err != nil {
		return nil, err
	}

	kept := u.Packages[:0]
	found := false
	for _, p := range u.Packages {
		if p.ID == packageID {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	if !found {
		return nil, ValidationError{Message: "package not found"}
	}
	u.Packages = kept

	return s.save(u)
}
