package metrics

// IncrementUserSignup increments the signup counter
func (m *Metrics) IncrementUserSignup() {
	m.safeExecute("IncrementUserSignup", func() {
		m.UserSignupTotal.Inc()
	})
}

// IncrementBoardCreated increments the board creation counter
func (m *Metrics) IncrementBoardCreated() {
	m.safeExecute("IncrementBoardCreated", func() {
		m.BoardCreatedTotal.Inc()
	})
}

// IncrementPostCreated increments the post creation counter
func (m *Metrics) IncrementPostCreated() {
	m.safeExecute("IncrementPostCreated", func() {
		m.PostCreatedTotal.Inc()
	})
}

// IncrementCommentCreated increments the comment creation counter
func (m *Metrics) IncrementCommentCreated() {
	m.safeExecute("IncrementCommentCreated", func() {
		m.CommentCreatedTotal.Inc()
	})
}

// IncrementPostFlagged increments the flagged post counter
func (m *Metrics) IncrementPostFlagged() {
	m.safeExecute("IncrementPostFlagged", func() {
		m.PostFlaggedTotal.Inc()
	})
}

// SetUsersTotal sets the total users gauge
func (m *Metrics) SetUsersTotal(count int64) {
	m.safeExecute("SetUsersTotal", func() {
		m.UsersTotal.Set(float64(count))
	})
}

// SetBoardsTotal sets the total boards gauge
func (m *Metrics) SetBoardsTotal(count int64) {
	m.safeExecute("SetBoardsTotal", func() {
		m.BoardsTotal.Set(float64(count))
	})
}

// SetPostsTotal sets the total posts gauge
func (m *Metrics) SetPostsTotal(count int64) {
	m.safeExecute("SetPostsTotal", func() {
		m.PostsTotal.Set(float64(count))
	})
}

// SetCommentsTotal sets the total comments gauge
func (m *Metrics) SetCommentsTotal(count int64) {
	m.safeExecute("SetCommentsTotal", func() {
		m.CommentsTotal.Set(float64(count))
	})
}
