package subset

// UserDataKey identifies user data attached to an input. Keys are compared
// by identity, so clients should declare them as package-level variables:
//
//	var myKey = &subset.UserDataKey{Name: "my-tool"}
type UserDataKey struct {
	Name string // informational only
}

// DestroyFunc releases user data when it is detached from an input.
type DestroyFunc func(data any)

type userDataItem struct {
	data    any
	destroy DestroyFunc
}

// SetUserData attaches data to in under key. If in already carries data for
// key, it is replaced if replace is true, and the destroy function of the
// previous data, if any, is called with the previous data. If replace is
// false, SetUserData leaves in unchanged and returns false.
//
// destroy, if non-nil, is called when data is detached from in, either by
// replacement or by in being destroyed. A nil key or a destroyed input is
// rejected.
func (in *Input) SetUserData(key *UserDataKey, data any, destroy DestroyFunc, replace bool) bool {
	if !in.IsAlive() || key == nil {
		return false
	}
	in.udMutex.Lock()
	old, exists := in.userData[key]
	if exists && !replace {
		in.udMutex.Unlock()
		return false
	}
	if in.userData == nil {
		in.userData = make(map[*UserDataKey]userDataItem)
	}
	in.userData[key] = userDataItem{data: data, destroy: destroy}
	in.udMutex.Unlock()
	if exists && old.destroy != nil { // call outside of lock
		old.destroy(old.data)
	}
	return true
}

// GetUserData returns the data attached to in under key, or nil.
func (in *Input) GetUserData(key *UserDataKey) any {
	if in == nil || key == nil {
		return nil
	}
	in.udMutex.Lock()
	defer in.udMutex.Unlock()
	if item, ok := in.userData[key]; ok {
		return item.data
	}
	return nil
}

func (in *Input) clearUserData() {
	in.udMutex.Lock()
	items := in.userData
	in.userData = nil
	in.udMutex.Unlock()
	for _, item := range items {
		if item.destroy != nil {
			item.destroy(item.data)
		}
	}
}
