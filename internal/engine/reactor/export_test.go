package reactor

// StatusMap returns a copy of the project status map.
func (s *Scheduler) StatusMap() map[string]ProjectStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()

	statusMap := make(map[string]ProjectStatus, len(s.status))
	for k, v := range s.status {
		statusMap[k] = v
	}
	return statusMap
}
