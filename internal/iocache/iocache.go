// Package iocache is for caching I/O calls and tracking assessment history.
package iocache

import (
	"sync"

	"github.com/oceanpulse/oceanpulse/internal/contract"
)

// CacheStoreManager manages the summary cache and assessment stores.
type CacheStoreManager struct {
	sync.RWMutex // Protects the store pointers during initialization
	summary      contract.CacheStore
	assessment   contract.AssessmentStore
}

var _ contract.CacheManager = &CacheStoreManager{} // Compile-time check

// GetSummaryStore returns the summary CacheStore.
func (mgr *CacheStoreManager) GetSummaryStore() contract.CacheStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.summary
}

// GetAssessmentStore returns the assessment AssessmentStore.
func (mgr *CacheStoreManager) GetAssessmentStore() contract.AssessmentStore {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.assessment
}
